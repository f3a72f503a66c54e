// Package http provides HTTP implementations of searchdrop.Searcher, which
// queries the site's JSON search endpoint, and searchdrop.Fetcher, which
// loads site pages that don't require JavaScript rendering.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fwojciec/searchdrop"
	"golang.org/x/time/rate"
)

// Ensure Searcher implements searchdrop.Searcher at compile time.
var _ searchdrop.Searcher = (*Searcher)(nil)

// Searcher queries the site's JSON search endpoint.
// Searcher is safe for concurrent use by multiple goroutines.
type Searcher struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithSearchTimeout bounds each search request.
// By default requests have no timeout beyond the caller's context.
func WithSearchTimeout(d time.Duration) SearcherOption {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithHTTPClient sets the client used for requests.
// The timeout option, if given, is applied to a copy of the client.
func WithHTTPClient(c *http.Client) SearcherOption {
	return func(s *Searcher) {
		s.client = c
	}
}

// WithRateLimit allows at most rps searches per second, waiting for a slot
// before each request. Zero or negative disables limiting.
func WithRateLimit(rps float64) SearcherOption {
	return func(s *Searcher) {
		if rps > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			s.limiter = nil
		}
	}
}

// NewSearcher creates a Searcher for the site at baseURL.
func NewSearcher(baseURL string, opts ...SearcherOption) *Searcher {
	s := &Searcher{baseURL: baseURL}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{}
	}
	if s.timeout > 0 {
		c := *s.client
		c.Timeout = s.timeout
		s.client = &c
	}

	return s
}

// searchResponse is the body returned by /api/search.
type searchResponse struct {
	// Results is a pointer so a missing or null field can be told apart
	// from an empty list.
	Results *[]*searchdrop.SearchResult `json:"results"`
}

// Search issues GET /api/search?query=<query> and decodes the results.
// Transport failures and non-2xx responses return EUNAVAILABLE; bodies that
// are not valid JSON or lack the results list return EINVALID.
func (s *Searcher) Search(ctx context.Context, query string) ([]*searchdrop.SearchResult, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, searchdrop.Errorf(searchdrop.EUNAVAILABLE, "waiting for rate limit: %v", err)
		}
	}

	resp, err := get(ctx, s.client, searchdrop.SearchAPIURL(s.baseURL, query), "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, searchdrop.Errorf(searchdrop.EINVALID, "failed to decode search response: %v", err)
	}
	if body.Results == nil {
		return nil, searchdrop.Errorf(searchdrop.EINVALID, "search response has no results list")
	}

	return *body.Results, nil
}
