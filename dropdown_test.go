package searchdrop_test

import (
	"testing"

	"github.com/fwojciec/searchdrop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing(t *testing.T) {
	t.Parallel()

	t.Run("builds one entry per result in received order", func(t *testing.T) {
		t.Parallel()

		results := []*searchdrop.SearchResult{
			{URL: "/a/1", ImagePath: "/static/x.jpg", Title: "Car repair", Description: "Fixing cars", State: "X", District: "Y"},
			{URL: "/a/2", ImagePath: "uploads/y.jpg", Title: "Car wash", Description: "Washing cars", State: "Z", District: "W"},
		}

		l := searchdrop.NewListing("car", results, "/static/")

		require.Len(t, l.Entries, 2)
		assert.Equal(t, "Car repair", l.Entries[0].Title)
		assert.Equal(t, "/static/x.jpg", l.Entries[0].ImageSrc)
		assert.Equal(t, "X, Y", l.Entries[0].Location)
		assert.Equal(t, "Car wash", l.Entries[1].Title)
		assert.Equal(t, "/static/uploads/y.jpg", l.Entries[1].ImageSrc)
		assert.Equal(t, "/search?query=car", l.ViewAllURL)
		assert.Equal(t, searchdrop.DropdownResults, l.State())
	})

	t.Run("empty results have no view-all link", func(t *testing.T) {
		t.Parallel()

		l := searchdrop.NewListing("zzz", nil, "/static/")

		assert.True(t, l.Empty())
		assert.Empty(t, l.ViewAllURL)
		assert.Equal(t, searchdrop.DropdownEmpty, l.State())
	})

	t.Run("skips nil results", func(t *testing.T) {
		t.Parallel()

		l := searchdrop.NewListing("car", []*searchdrop.SearchResult{nil, {Title: "Car"}}, "")

		require.Len(t, l.Entries, 1)
		assert.Equal(t, "Car", l.Entries[0].Title)
	})
}

func TestFormatListing(t *testing.T) {
	t.Parallel()

	t.Run("formats entries and view-all link", func(t *testing.T) {
		t.Parallel()

		l := searchdrop.NewListing("car", []*searchdrop.SearchResult{
			{URL: "/a/1", Title: "Car repair", Description: "...", State: "X", District: "Y"},
		}, "")

		expected := "1. Car repair\n   ...\n   X, Y\n   /a/1\n\nView all results: /search?query=car"
		assert.Equal(t, expected, searchdrop.FormatListing(l))
	})

	t.Run("empty listing shows placeholder", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No results found", searchdrop.FormatListing(searchdrop.NewListing("zzz", nil, "")))
	})

	t.Run("nil listing shows placeholder", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No results found", searchdrop.FormatListing(nil))
	})
}

func TestDropdownState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hidden", searchdrop.DropdownHidden.String())
	assert.Equal(t, "loading", searchdrop.DropdownLoading.String())
	assert.Equal(t, "results", searchdrop.DropdownResults.String())
	assert.Equal(t, "empty", searchdrop.DropdownEmpty.String())
	assert.Equal(t, "DropdownState(9)", searchdrop.DropdownState(9).String())
}
