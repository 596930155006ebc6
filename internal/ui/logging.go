package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	debugTag = color.New(color.FgHiBlack).Sprint("[DEBUG]")
	infoTag  = color.New(color.FgBlue).Sprint("[INFO]")
	warnTag  = color.New(color.FgYellow).Sprint("[WARN]")
	errorTag = color.New(color.FgRed, color.Bold).Sprint("[ERROR]")
)

type Logger struct {
	Debug bool
	out   io.Writer
}

func NewLoggerTo(w io.Writer, debug bool) *Logger {
	return &Logger{Debug: debug, out: w}
}

func (l *Logger) printf(tag, format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, tag+" "+format, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		l.printf(debugTag, format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.printf(infoTag, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.printf(warnTag, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.printf(errorTag, format, args...)
}
