// Package readability extracts the main content of full search pages using
// go-readability. It is the fallback when trafilatura finds nothing.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/searchdrop"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements searchdrop.Extractor at compile time.
var _ searchdrop.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the URL the HTML was fetched from. Relative links in the
// extracted content are resolved against it.
func WithPageURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.pageURL = u
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*searchdrop.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, searchdrop.Errorf(searchdrop.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, err
	}

	return &searchdrop.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
