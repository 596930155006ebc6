package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brogergvhs/manga1000/internal/providers"
)

// Scheduler is the CLI's providers.Scheduler: it runs each request through
// the shared client, retrying transient failures.
type Scheduler struct {
	client   *http.Client
	attempts int
	backoff  time.Duration
	log      DebugLogger
}

var _ providers.Scheduler = (*Scheduler)(nil)

func NewScheduler(c *http.Client, attempts int, backoff time.Duration, log DebugLogger) *Scheduler {
	return &Scheduler{
		client:   c,
		attempts: max(1, attempts),
		backoff:  backoff,
		log:      log,
	}
}

func (s *Scheduler) Schedule(ctx context.Context, r providers.Request) (*providers.Response, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, nil)
	if err != nil {
		return nil, err
	}

	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := DoWithRetry(s.client, req, s.attempts, s.backoff)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && s.log != nil {
			s.log.Debugf("Warning: failed to close response body for %s: %v\n", r.URL, cerr)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.URL, err)
	}

	return &providers.Response{
		Data:   string(data),
		Status: resp.StatusCode,
	}, nil
}
