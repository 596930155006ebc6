package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProgress struct {
	mu    sync.Mutex
	done  int
	total int
	bytes int64
}

func (p *recordingProgress) Update(done, total int, bytes int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done, p.total, p.bytes = done, total, bytes
}

func imageServer(t *testing.T, referer *atomic.Value) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referer.Store(r.Header.Get("Referer"))

		switch r.URL.Path {
		case "/broken.jpg":
			http.Error(w, "gone", http.StatusNotFound)
		case "/page.html":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		default:
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("PNGDATA"))
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestDownloadPages(t *testing.T) {
	var referer atomic.Value
	srv := imageServer(t, &referer)

	d := New(srv.Client(), false, nil)
	d.RetryDelay = 0

	pages := []string{
		srv.URL + "/a.png?w=800",
		srv.URL + "/b",
		srv.URL + "/ad.gif",
	}

	p := &recordingProgress{}
	dir := filepath.Join(t.TempDir(), "ch1")

	files, n, err := d.DownloadPages(context.Background(), pages, dir, "https://manga1000.com", 2, p)
	require.NoError(t, err)

	sort.Strings(files)
	assert.Equal(t, []string{
		filepath.Join(dir, "page_001.png"),
		filepath.Join(dir, "page_002.jpg"),
	}, files)
	assert.Equal(t, int64(14), n)
	assert.Equal(t, "https://manga1000.com", referer.Load())

	assert.Equal(t, 3, p.done)
	assert.Equal(t, 3, p.total)
	assert.Equal(t, int64(14), p.bytes)

	b, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(b))
}

func TestDownloadPagesBroken(t *testing.T) {
	var referer atomic.Value
	srv := imageServer(t, &referer)

	pages := []string{srv.URL + "/ok.png", srv.URL + "/broken.jpg", srv.URL + "/page.html"}

	t.Run("strict", func(t *testing.T) {
		d := New(srv.Client(), false, nil)
		d.Attempts = 1

		files, _, err := d.DownloadPages(context.Background(), pages, t.TempDir(), "", 1, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed 2/3 images")
		assert.Len(t, files, 1)
	})

	t.Run("skip broken", func(t *testing.T) {
		d := New(srv.Client(), true, nil)
		d.Attempts = 2
		d.RetryDelay = 0

		files, _, err := d.DownloadPages(context.Background(), pages, t.TempDir(), "", 3, nil)
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})
}

func TestDownloadPagesCancelled(t *testing.T) {
	var referer atomic.Value
	srv := imageServer(t, &referer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(srv.Client(), true, nil)
	_, _, err := d.DownloadPages(ctx, []string{srv.URL + "/a.png"}, t.TempDir(), "", 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunPool(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}

	err := runPool(context.Background(), 4, 10, func(i int) {
		mu.Lock()
		seen[i] = true
		mu.Unlock()
	})
	require.NoError(t, err)
	assert.Len(t, seen, 10)

	assert.NoError(t, runPool(context.Background(), 4, 0, func(int) { t.Fatal("called") }))
}

func TestPageFileName(t *testing.T) {
	assert.Equal(t, "page_001.webp", pageFileName(0, "https://x/y/001.WEBP"))
	assert.Equal(t, "page_010.jpg", pageFileName(9, "https://x/y/img?id=3"))
	assert.Equal(t, "page_002.jpg", pageFileName(1, "https://x/y/file.verylongext"))
}

func TestResolvePages(t *testing.T) {
	got := ResolvePages("https://manga1000.com/naruto-raw-1/", []string{
		"https://cdn.example/1.jpg",
		"//cdn.example/2.jpg",
		"/wp-content/3.jpg",
		"4.jpg",
	})

	assert.Equal(t, []string{
		"https://cdn.example/1.jpg",
		"https://cdn.example/2.jpg",
		"https://manga1000.com/wp-content/3.jpg",
		"https://manga1000.com/naruto-raw-1/4.jpg",
	}, got)

	assert.Equal(t, []string{"a.jpg"}, ResolvePages("%zz", []string{"a.jpg"}))
}
