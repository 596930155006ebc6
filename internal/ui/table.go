package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	headingStyle = color.New(color.Bold, color.FgCyan)
	labelStyle   = color.New(color.FgHiBlue)
	mutedStyle   = color.New(color.FgHiBlack)
)

func Heading(w io.Writer, title string) {
	_, _ = headingStyle.Fprintln(w, title)
}

// Field prints "label: value", skipping empty values.
func Field(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Sprint(label+":"), value)
}

func Muted(w io.Writer, format string, args ...any) {
	_, _ = mutedStyle.Fprintf(w, format, args...)
}

func PrintTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Alignment.Global = tw.AlignLeft
		cfg.Row.Alignment.Global = tw.AlignLeft
		cfg.Header.Padding.Global = tw.Padding{Left: " ", Right: " "}
		cfg.Row.Padding.Global = tw.Padding{Left: " ", Right: " "}
	})

	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return err
	}

	return table.Render()
}
