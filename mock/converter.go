package mock

import "github.com/fwojciec/searchdrop"

var _ searchdrop.Converter = (*Converter)(nil)

// Converter is a mock implementation of searchdrop.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
