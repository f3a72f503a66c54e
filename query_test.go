package searchdrop_test

import (
	"testing"

	"github.com/fwojciec/searchdrop"
	"github.com/stretchr/testify/assert"
)

func TestIsSearchable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty", query: "", want: false},
		{name: "two characters", query: "ca", want: false},
		{name: "three characters", query: "car", want: true},
		{name: "padded short query", query: "  ca  ", want: false},
		{name: "padded long query", query: "  car ", want: true},
		{name: "whitespace only", query: "     ", want: false},
		{name: "multibyte characters count once", query: "日本", want: false},
		{name: "three multibyte characters", query: "日本語", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, searchdrop.IsSearchable(tt.query))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "car repair", searchdrop.NormalizeQuery("\t car repair \n"))
}

func TestSearchPageURL(t *testing.T) {
	t.Parallel()

	t.Run("simple query", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/search?query=car", searchdrop.SearchPageURL("car"))
	})

	t.Run("escapes reserved characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/search?query=a%26b%3Dc", searchdrop.SearchPageURL("a&b=c"))
	})

	t.Run("encodes like the site script", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/search?query=car%20repair", searchdrop.SearchPageURL("car repair"))
		assert.Equal(t, "/search?query=it's%20(new)!*~", searchdrop.SearchPageURL("it's (new)!*~"))
		assert.Equal(t, "/search?query=%E0%A4%97%E0%A4%BE%E0%A4%81%E0%A4%B5", searchdrop.SearchPageURL("गाँव"))
	})
}

func TestSearchAPIURL(t *testing.T) {
	t.Parallel()

	t.Run("joins base URL without double slash", func(t *testing.T) {
		t.Parallel()

		got := searchdrop.SearchAPIURL("https://example.com/", "car")

		assert.Equal(t, "https://example.com/api/search?query=car", got)
	})

	t.Run("site-relative when base is empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/api/search?query=car", searchdrop.SearchAPIURL("", "car"))
	})
}
