package mock

import (
	"context"

	"github.com/fwojciec/searchdrop"
)

var _ searchdrop.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of searchdrop.PageReader.
type PageReader struct {
	ReadFn func(ctx context.Context, url string) (*searchdrop.Page, error)
}

func (r *PageReader) Read(ctx context.Context, url string) (*searchdrop.Page, error) {
	return r.ReadFn(ctx, url)
}
