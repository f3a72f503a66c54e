package mock

import (
	"context"

	"github.com/fwojciec/searchdrop"
)

var _ searchdrop.PageSaver = (*PageSaver)(nil)

// PageSaver is a mock implementation of searchdrop.PageSaver.
type PageSaver struct {
	SavePageFn func(ctx context.Context, page *searchdrop.Page) (string, error)
}

func (s *PageSaver) SavePage(ctx context.Context, page *searchdrop.Page) (string, error) {
	return s.SavePageFn(ctx, page)
}
