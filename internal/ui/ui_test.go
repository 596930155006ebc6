package ui

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewLoggerTo(&buf, false)
	quiet.Debugf("hidden %d\n", 1)
	quiet.Infof("shown %d\n", 2)
	quiet.Warnf("careful\n")
	quiet.Errorf("broken: %v\n", "x")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "broken: x")

	buf.Reset()
	NewLoggerTo(&buf, true).Debugf("visible\n")
	assert.Contains(t, buf.String(), "[DEBUG]")
	assert.Contains(t, buf.String(), "visible")
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	err := PrintTable(&buf, []string{"ID", "Title"}, [][]string{
		{"naruto", "NARUTO"},
		{"bleach", "BLEACH"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "naruto")
	assert.Contains(t, out, "BLEACH")
}

func TestFieldSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer

	Field(&buf, "Author", "")
	assert.Empty(t, buf.String())

	Field(&buf, "Author", "Oda")
	assert.Contains(t, buf.String(), "Oda")
}

func TestProgressHandle(t *testing.T) {
	pm := NewProgressManager(io.Discard)

	done := pm.Register("Ch.1")
	done.Update(0, 3, 0)
	done.Update(3, 3, 2048)
	done.MarkDone()
	done.MarkDone()
	done.Update(1, 3, 0)

	failed := pm.Register("Ch.2")
	failed.Update(1, 4, 10)
	failed.Abort()

	pm.Wait()

	assert.Equal(t, int64(3), done.total.Load())
	assert.Equal(t, int64(2048), done.bytes.Load())
	assert.True(t, failed.final.Load())
}

func TestStatsPrint(t *testing.T) {
	var buf bytes.Buffer
	s := &Stats{}
	s.TotalChapters.Add(2)
	s.TotalImages.Add(40)
	s.TotalBytes.Add(5 << 20)

	s.Print(&buf, 1500*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "Chapters: 2")
	assert.Contains(t, out, "Images:   40")
	assert.Contains(t, out, "5.00 MB")
	assert.NotContains(t, out, "Failed")
}
