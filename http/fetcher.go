package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/searchdrop"
)

// DefaultFetchTimeout bounds a page fetch when no timeout is given.
const DefaultFetchTimeout = 10 * time.Second

// MaxPageBytes caps how much of a page is read. Search pages are small; a
// larger body is truncated rather than buffered whole.
const MaxPageBytes = 4 << 20

// Ensure Fetcher implements searchdrop.Fetcher at compile time.
var _ searchdrop.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages, such as the full search page, using HTTP
// requests. Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each fetch.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{client: &http.Client{Timeout: DefaultFetchTimeout}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the HTML at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := get(ctx, f.client, url, "text/html")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPageBytes))
	if err != nil {
		return "", searchdrop.Errorf(searchdrop.EUNAVAILABLE, "failed to read %s: %v", url, err)
	}
	return string(body), nil
}

// Close is a no-op; http.Client holds nothing that needs releasing.
func (f *Fetcher) Close() error {
	return nil
}
