package searchdrop

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the shortest trimmed query, in characters, that is sent
// to the search endpoint.
const MinQueryLength = 3

// Paths served by the site's search backend.
const (
	SearchAPIPath  = "/api/search"
	SearchPagePath = "/search"
)

// NormalizeQuery trims surrounding whitespace from raw input.
func NormalizeQuery(raw string) string {
	return strings.TrimSpace(raw)
}

// IsSearchable reports whether the trimmed query is long enough to search.
func IsSearchable(query string) bool {
	return utf8.RuneCountInString(NormalizeQuery(query)) >= MinQueryLength
}

// SearchPageURL returns the site-relative URL of the full search page for query.
func SearchPageURL(query string) string {
	return SearchPagePath + "?" + encodeQuery(query)
}

// SearchAPIURL returns the URL of the JSON search endpoint under baseURL.
// An empty baseURL yields a site-relative URL.
func SearchAPIURL(baseURL, query string) string {
	return strings.TrimSuffix(baseURL, "/") + SearchAPIPath + "?" + encodeQuery(query)
}

// componentUnescaper turns url.QueryEscape output into the form browsers
// produce for encodeURIComponent: spaces as %20 and !'()* left as is.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeQuery(query string) string {
	return "query=" + componentUnescaper.Replace(url.QueryEscape(query))
}
