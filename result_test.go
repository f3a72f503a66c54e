package searchdrop_test

import (
	"testing"

	"github.com/fwojciec/searchdrop"
	"github.com/stretchr/testify/assert"
)

func TestResolveImagePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		staticRoot string
		imagePath  string
		want       string
	}{
		{name: "absolute path kept", staticRoot: "/static/", imagePath: "/static/x.jpg", want: "/static/x.jpg"},
		{name: "relative path under root", staticRoot: "/static/", imagePath: "uploads/x.jpg", want: "/static/uploads/x.jpg"},
		{name: "default root", staticRoot: "", imagePath: "x.jpg", want: "/static/x.jpg"},
		{name: "root without trailing slash", staticRoot: "https://cdn.example.com/assets", imagePath: "x.jpg", want: "https://cdn.example.com/assets/x.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, searchdrop.ResolveImagePath(tt.staticRoot, tt.imagePath))
		})
	}
}

func TestSearchResult_Location(t *testing.T) {
	t.Parallel()

	r := &searchdrop.SearchResult{State: "Kerala", District: "Idukki"}

	assert.Equal(t, "Kerala, Idukki", r.Location())
}
