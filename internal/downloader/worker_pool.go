package downloader

import (
	"context"
	"io"
	"sync"
)

// runPool calls fn(0..jobs-1) on at most workers goroutines. It stops
// handing out jobs once ctx is done and reports ctx.Err() in that case.
func runPool(ctx context.Context, workers, jobs int, fn func(i int)) error {
	if jobs == 0 {
		return nil
	}
	workers = min(max(1, workers), jobs)

	queue := make(chan int)
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range queue {
				fn(i)
			}
		}()
	}

	var err error
feed:
	for i := 0; i < jobs; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case queue <- i:
		}
	}

	close(queue)
	wg.Wait()

	return err
}

type progressWriter struct {
	w  io.Writer
	fn func(n int64)
}

func (pw progressWriter) Write(b []byte) (int, error) {
	n, err := pw.w.Write(b)
	if n > 0 && pw.fn != nil {
		pw.fn(int64(n))
	}

	return n, err
}

// copyWithProgress reports each written chunk's size to progress.
func copyWithProgress(dst io.Writer, src io.Reader, progress func(n int64)) (int64, error) {
	return io.Copy(progressWriter{w: dst, fn: progress}, src)
}
