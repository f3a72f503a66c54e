package mock

import "github.com/fwojciec/searchdrop"

var _ searchdrop.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of searchdrop.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*searchdrop.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*searchdrop.ExtractResult, error) {
	return e.ExtractFn(html)
}
