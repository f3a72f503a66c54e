package main_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/fwojciec/searchdrop"
	main "github.com/fwojciec/searchdrop/cmd/searchdrop"
	"github.com/fwojciec/searchdrop/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticExtractor(e searchdrop.Extractor) main.ExtractorFunc {
	return func(*url.URL) searchdrop.Extractor { return e }
}

func TestReader_Read(t *testing.T) {
	t.Parallel()

	t.Run("resolves url and converts main content", func(t *testing.T) {
		t.Parallel()

		var fetched string
		var extractedFor *url.URL
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, u string) (string, error) {
				fetched = u
				return "<html><body><main><p>Results</p></main></body></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_ string) (*searchdrop.ExtractResult, error) {
				return &searchdrop.ExtractResult{Title: "Search", ContentHTML: "<p>Results</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "Results", nil
			},
		}

		r, err := main.NewReader("http://village.test", fetcher, func(u *url.URL) searchdrop.Extractor {
			extractedFor = u
			return extractor
		}, converter)
		require.NoError(t, err)

		page, err := r.Read(context.Background(), "/search?query=car")

		require.NoError(t, err)
		assert.Equal(t, "http://village.test/search?query=car", fetched)
		require.NotNil(t, extractedFor)
		assert.Equal(t, "village.test", extractedFor.Host)
		assert.Equal(t, "http://village.test/search?query=car", page.URL)
		assert.Equal(t, "Search", page.Title)
		assert.Equal(t, "Results", page.Content)
	})

	t.Run("returns fetch error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", searchdrop.Errorf(searchdrop.EUNAVAILABLE, "connection refused")
			},
		}

		r, err := main.NewReader("http://village.test", fetcher, staticExtractor(nil), nil)
		require.NoError(t, err)

		_, err = r.Read(context.Background(), "/article/1")

		require.Error(t, err)
		assert.Equal(t, searchdrop.EUNAVAILABLE, searchdrop.ErrorCode(err))
	})

	t.Run("returns not found for empty content", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_ string) (*searchdrop.ExtractResult, error) {
				return &searchdrop.ExtractResult{}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(_ string) (string, error) {
				return "  \n", nil
			},
		}

		r, err := main.NewReader("http://village.test", fetcher, staticExtractor(extractor), converter)
		require.NoError(t, err)

		_, err = r.Read(context.Background(), "/article/1")

		require.Error(t, err)
		assert.Equal(t, searchdrop.ENOTFOUND, searchdrop.ErrorCode(err))
	})
}

func TestFallbackExtractor_Extract(t *testing.T) {
	t.Parallel()

	primaryResult := &searchdrop.ExtractResult{Title: "P", ContentHTML: "<p>primary</p>"}
	fallbackResult := &searchdrop.ExtractResult{Title: "F", ContentHTML: "<p>fallback</p>"}

	fallback := &mock.Extractor{
		ExtractFn: func(_ string) (*searchdrop.ExtractResult, error) {
			return fallbackResult, nil
		},
	}

	t.Run("uses primary result", func(t *testing.T) {
		t.Parallel()

		e := &main.FallbackExtractor{
			Primary: &mock.Extractor{ExtractFn: func(_ string) (*searchdrop.ExtractResult, error) {
				return primaryResult, nil
			}},
			Fallback: fallback,
		}

		got, err := e.Extract("<p>x</p>")

		require.NoError(t, err)
		assert.Same(t, primaryResult, got)
	})

	t.Run("falls back when primary finds nothing", func(t *testing.T) {
		t.Parallel()

		e := &main.FallbackExtractor{
			Primary: &mock.Extractor{ExtractFn: func(_ string) (*searchdrop.ExtractResult, error) {
				return &searchdrop.ExtractResult{}, nil
			}},
			Fallback: fallback,
		}

		got, err := e.Extract("<p>x</p>")

		require.NoError(t, err)
		assert.Same(t, fallbackResult, got)
	})

	t.Run("falls back when primary fails", func(t *testing.T) {
		t.Parallel()

		e := &main.FallbackExtractor{
			Primary: &mock.Extractor{ExtractFn: func(_ string) (*searchdrop.ExtractResult, error) {
				return nil, errors.New("no main content")
			}},
			Fallback: fallback,
		}

		got, err := e.Extract("<p>x</p>")

		require.NoError(t, err)
		assert.Same(t, fallbackResult, got)
	})

	t.Run("does not retry invalid input", func(t *testing.T) {
		t.Parallel()

		e := &main.FallbackExtractor{
			Primary: &mock.Extractor{ExtractFn: func(_ string) (*searchdrop.ExtractResult, error) {
				return nil, searchdrop.Errorf(searchdrop.EINVALID, "empty HTML")
			}},
			Fallback: &mock.Extractor{ExtractFn: func(_ string) (*searchdrop.ExtractResult, error) {
				t.Fatal("fallback must not run")
				return nil, nil
			}},
		}

		_, err := e.Extract("")

		require.Error(t, err)
	})
}
