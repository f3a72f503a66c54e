// Package slog provides log/slog decorators for searchdrop services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/searchdrop"
)

// Ensure LoggingSearcher implements searchdrop.Searcher.
var _ searchdrop.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with request logging.
type LoggingSearcher struct {
	next   searchdrop.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next searchdrop.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the request.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (results []*searchdrop.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
