package downloader

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type Progress interface {
	Update(done, total int, bytes int64)
}

type Logger interface {
	Debugf(format string, args ...any)
}

type Downloader struct {
	client     *http.Client
	skipBroken bool
	log        Logger

	Attempts   int
	RetryDelay time.Duration
}

func New(c *http.Client, skipBroken bool, log Logger) *Downloader {
	return &Downloader{
		client:     c,
		skipBroken: skipBroken,
		log:        log,
		Attempts:   3,
		RetryDelay: time.Second,
	}
}

type chapterState struct {
	mu         sync.Mutex
	doneImages int
	total      int
	doneBytes  int64
	progress   Progress
}

func (cs *chapterState) addBytes(n int64) {
	cs.mu.Lock()
	cs.doneBytes += n
	cs.progress.Update(cs.doneImages, cs.total, cs.doneBytes)
	cs.mu.Unlock()
}

func (cs *chapterState) finishImage() {
	cs.mu.Lock()
	cs.doneImages++
	cs.progress.Update(cs.doneImages, cs.total, cs.doneBytes)
	cs.mu.Unlock()
}

// DownloadPages fetches the chapter's page images into folder as
// page_001.jpg, page_002.png, ... with at most workers requests in flight.
// It returns the written files and the number of bytes received.
func (d *Downloader) DownloadPages(
	ctx context.Context,
	pages []string,
	folder string,
	referer string,
	workers int,
	p Progress,
) ([]string, int64, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, 0, err
	}
	if p == nil {
		p = nopProgress{}
	}

	cs := &chapterState{total: len(pages), progress: p}
	p.Update(0, len(pages), 0)

	var mu sync.Mutex
	files := make([]string, 0, len(pages))
	var errs []error

	err := runPool(ctx, workers, len(pages), func(i int) {
		defer cs.finishImage()

		u := pages[i]
		if strings.HasSuffix(strings.ToLower(urlPath(u)), ".gif") {
			return
		}

		out := filepath.Join(folder, pageFileName(i, u))
		if err := d.downloadWithRetry(ctx, u, out, referer, cs.addBytes); err != nil {
			if d.log != nil {
				d.log.Debugf("page %d (%s): %v\n", i+1, u, err)
			}
			mu.Lock()
			errs = append(errs, fmt.Errorf("image %d: %w", i+1, err))
			mu.Unlock()
			return
		}

		mu.Lock()
		files = append(files, out)
		mu.Unlock()
	})

	cs.mu.Lock()
	bytes := cs.doneBytes
	cs.mu.Unlock()

	if err != nil {
		return files, bytes, err
	}

	if len(errs) > 0 && !d.skipBroken {
		return files, bytes, fmt.Errorf("failed %d/%d images (use --skip-broken to continue): %w", len(errs), len(pages), errs[0])
	}

	return files, bytes, nil
}

func urlPath(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		return u.Path
	}

	return raw
}

func pageFileName(i int, u string) string {
	ext := strings.ToLower(path.Ext(urlPath(u)))
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}

	return fmt.Sprintf("page_%03d%s", i+1, ext)
}

func (d *Downloader) downloadWithRetry(
	ctx context.Context,
	u, output, referer string,
	progress func(n int64),
) error {
	attempts := max(1, d.Attempts)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = d.download(ctx, u, output, referer, progress)
		if err == nil || attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * d.RetryDelay):
		}
	}

	return err
}

func (d *Downloader) download(
	ctx context.Context,
	u, output, referer string,
	progress func(n int64),
) (err error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ja,en-US;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, _ := mime.ParseMediaType(ct); !strings.HasPrefix(mt, "image/") {
			return fmt.Errorf("unexpected MIME: %s", ct)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = copyWithProgress(f, resp.Body, progress)

	return err
}

type nopProgress struct{}

func (nopProgress) Update(int, int, int64) {}
