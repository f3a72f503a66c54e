package mock

import (
	"context"

	"github.com/fwojciec/searchdrop"
)

var _ searchdrop.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of searchdrop.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]*searchdrop.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]*searchdrop.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
