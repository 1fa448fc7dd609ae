package ianafetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/httpclient"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
)

// Fetcher downloads a registry CSV export over HTTP.
type Fetcher struct {
	exec *httpclient.Executor
	now  func() time.Time
}

type Option func(*Fetcher)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(f *Fetcher) { f.now = now }
}

func New(exec *httpclient.Executor, opts ...Option) *Fetcher {
	f := &Fetcher{exec: exec, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.Fetcher = (*Fetcher)(nil)

func (f *Fetcher) Fetch(ctx context.Context, url string) (domain.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Snapshot{}, &domain.OpError{
			Op:   "ianafetch.request",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := f.exec.Do(ctx, req)
	if err != nil {
		return domain.Snapshot{}, &domain.OpError{
			Op:   "ianafetch.do",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if resp.Status != http.StatusOK {
		return domain.Snapshot{}, &domain.OpError{
			Op:   "ianafetch.status",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("GET %s: unexpected status %d %s", url, resp.Status, http.StatusText(resp.Status)),
		}
	}
	if resp.Truncated {
		return domain.Snapshot{}, &domain.OpError{
			Op:   "ianafetch.body",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("response body exceeds the download limit"),
		}
	}

	return domain.Snapshot{
		SourceURL:    url,
		FetchedAt:    f.now().UTC(),
		Body:         resp.BodyBytes,
		ETag:         resp.Headers.Get("ETag"),
		LastModified: resp.Headers.Get("Last-Modified"),
	}, nil
}
