package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/searchdrop"
	"github.com/fwojciec/searchdrop/fs"
	"github.com/fwojciec/searchdrop/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "article path",
			url:  "https://village.test/article/12",
			want: "article/12.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://village.test/articles/",
			want: "articles/index.md",
		},
		{
			name: "root path becomes index",
			url:  "https://village.test/",
			want: "index.md",
		},
		{
			name: "root without trailing slash",
			url:  "https://village.test",
			want: "index.md",
		},
		{
			name: "search page keeps query",
			url:  "https://village.test/search?query=car",
			want: "search/car.md",
		},
		{
			name: "query is slugged",
			url:  "https://village.test/search?query=Car+Fair%21%20Wayanad",
			want: "search/car-fair-wayanad.md",
		},
		{
			name: "symbol-only query is ignored",
			url:  "https://village.test/search?query=%21%21",
			want: "search.md",
		},
		{
			name: "ignores other parameters",
			url:  "https://village.test/article/3?ref=home",
			want: "article/3.md",
		},
		{
			name: "ignores fragment",
			url:  "https://village.test/article/3#comments",
			want: "article/3.md",
		},
		{
			name:    "invalid url",
			url:     "http://[::1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, searchdrop.EINVALID, searchdrop.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPage(t *testing.T) {
	t.Parallel()

	page := &searchdrop.Page{
		URL:     "https://village.test/article/12",
		Title:   "New well opened",
		Content: "# New well opened\n\nThe panchayat opened a well.",
	}

	got := fs.FormatPage(page, time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC))

	want := `---
source: https://village.test/article/12
title: New well opened
saved: 2025-01-08
---

# New well opened

The panchayat opened a well.`

	assert.Equal(t, want, got)
}

func TestWriter_SavePage(t *testing.T) {
	t.Parallel()

	t.Run("writes page to path with frontmatter", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir, fs.WithClock(mock.NewClock(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))))

		path, err := w.SavePage(context.Background(), &searchdrop.Page{
			URL:     "https://village.test/search?query=car",
			Title:   "Search",
			Content: "Results",
		})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "search", "car.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "---\nsource: https://village.test/search?query=car\ntitle: Search\nsaved: 2025-01-08\n---\n\nResults", string(content))
	})

	t.Run("overwrites earlier copy", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		page := &searchdrop.Page{URL: "https://village.test/article/1", Content: "old"}

		_, err := w.SavePage(context.Background(), page)
		require.NoError(t, err)

		page.Content = "new"
		path, err := w.SavePage(context.Background(), page)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "\n\nnew")
	})

	t.Run("requires page url", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewWriter(t.TempDir()).SavePage(context.Background(), &searchdrop.Page{Content: "x"})

		require.Error(t, err)
		assert.Equal(t, searchdrop.EINVALID, searchdrop.ErrorCode(err))
	})

	t.Run("respects canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewWriter(t.TempDir()).SavePage(ctx, &searchdrop.Page{URL: "https://village.test/a"})

		require.ErrorIs(t, err, context.Canceled)
	})
}
