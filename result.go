package searchdrop

import (
	"context"
	"strings"
)

// DefaultStaticRoot is the prefix for image paths that are not site-absolute.
const DefaultStaticRoot = "/static/"

// SearchResult is a single article returned by the search endpoint.
type SearchResult struct {
	URL         string `json:"url"`
	ImagePath   string `json:"image_path"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	District    string `json:"district"`
}

// Location returns the article location as "state, district".
func (r *SearchResult) Location() string {
	return r.State + ", " + r.District
}

// Searcher queries the site's search endpoint.
type Searcher interface {
	// Search returns the results for query in the order the backend ranked them.
	// A nil or empty slice with a nil error means nothing matched.
	Search(ctx context.Context, query string) ([]*SearchResult, error)
}

// ResolveImagePath returns the image source for imagePath. Paths starting
// with "/" are used as-is; anything else is placed under staticRoot.
func ResolveImagePath(staticRoot, imagePath string) string {
	if strings.HasPrefix(imagePath, "/") {
		return imagePath
	}
	if staticRoot == "" {
		staticRoot = DefaultStaticRoot
	}
	if !strings.HasSuffix(staticRoot, "/") {
		staticRoot += "/"
	}
	return staticRoot + imagePath
}
