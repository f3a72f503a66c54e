package mock

import (
	"context"

	"github.com/fwojciec/searchdrop"
)

var _ searchdrop.SearchLog = (*SearchLog)(nil)

// SearchLog is a mock implementation of searchdrop.SearchLog.
type SearchLog struct {
	RecordSearchFn func(ctx context.Context, entry *searchdrop.SearchLogEntry) error
	FindSearchesFn func(ctx context.Context, filter searchdrop.SearchLogFilter) ([]*searchdrop.SearchLogEntry, error)
}

func (s *SearchLog) RecordSearch(ctx context.Context, entry *searchdrop.SearchLogEntry) error {
	return s.RecordSearchFn(ctx, entry)
}

func (s *SearchLog) FindSearches(ctx context.Context, filter searchdrop.SearchLogFilter) ([]*searchdrop.SearchLogEntry, error) {
	return s.FindSearchesFn(ctx, filter)
}
