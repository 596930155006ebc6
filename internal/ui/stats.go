package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/manga1000/internal/util"
)

type Stats struct {
	TotalImages   atomic.Int64
	TotalBytes    atomic.Int64
	TotalChapters atomic.Int64
	FailedChapter atomic.Int64
}

func (s *Stats) Print(w io.Writer, elapsed time.Duration) {
	_, _ = fmt.Fprintln(w)
	Heading(w, "Download Summary:")
	_, _ = fmt.Fprintf(w, "Chapters: %d\n", s.TotalChapters.Load())
	if n := s.FailedChapter.Load(); n > 0 {
		_, _ = fmt.Fprintf(w, "Failed:   %d\n", n)
	}
	_, _ = fmt.Fprintf(w, "Images:   %d\n", s.TotalImages.Load())
	_, _ = fmt.Fprintf(w, "Data:     %s\n", util.Human(s.TotalBytes.Load()))
	_, _ = fmt.Fprintf(w, "Time:     %s\n", elapsed.Round(time.Second))
}
