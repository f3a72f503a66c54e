package main

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/searchdrop"
)

// readTimeout bounds a single page fetch in the reader view.
const readTimeout = 30 * time.Second

// Ensure Reader implements searchdrop.PageReader at compile time.
var _ searchdrop.PageReader = (*Reader)(nil)

// ExtractorFunc returns an extractor for a page at the given URL.
type ExtractorFunc func(pageURL *url.URL) searchdrop.Extractor

// Reader implements searchdrop.PageReader by fetching, extracting, and
// converting site pages through injected dependencies.
type Reader struct {
	base      *url.URL
	fetcher   searchdrop.Fetcher
	extractor ExtractorFunc
	converter searchdrop.Converter
}

// NewReader creates a Reader resolving site-relative URLs against baseURL.
func NewReader(
	baseURL string,
	fetcher searchdrop.Fetcher,
	extractor ExtractorFunc,
	converter searchdrop.Converter,
) (*Reader, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, searchdrop.Errorf(searchdrop.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	return &Reader{
		base:      base,
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
	}, nil
}

// Read retrieves the page at ref and returns its main content as Markdown.
func (r *Reader) Read(ctx context.Context, ref string) (*searchdrop.Page, error) {
	rel, err := url.Parse(ref)
	if err != nil {
		return nil, searchdrop.Errorf(searchdrop.EINVALID, "invalid page URL %q: %v", ref, err)
	}
	pageURL := r.base.ResolveReference(rel)

	html, err := r.fetcher.Fetch(ctx, pageURL.String())
	if err != nil {
		return nil, err
	}

	result, err := r.extractor(pageURL).Extract(html)
	if err != nil {
		return nil, err
	}

	content, err := r.converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, searchdrop.Errorf(searchdrop.ENOTFOUND, "no readable content at %s", pageURL)
	}

	return &searchdrop.Page{
		URL:     pageURL.String(),
		Title:   result.Title,
		Content: content,
	}, nil
}

// FallbackExtractor tries Primary first and uses Fallback when Primary
// fails or finds no content.
type FallbackExtractor struct {
	Primary  searchdrop.Extractor
	Fallback searchdrop.Extractor
}

// Extract implements searchdrop.Extractor.
func (e *FallbackExtractor) Extract(html string) (*searchdrop.ExtractResult, error) {
	result, err := e.Primary.Extract(html)
	if err == nil && strings.TrimSpace(result.ContentHTML) != "" {
		return result, nil
	}
	if searchdrop.ErrorCode(err) == searchdrop.EINVALID {
		return nil, err
	}
	return e.Fallback.Extract(html)
}
