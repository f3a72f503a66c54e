// Package goquery renders dropdown listings as HTML and applies them to a
// parsed page, mirroring what the site script does to the live document.
package goquery

import (
	"bytes"
	"html/template"
	"io"

	"github.com/fwojciec/searchdrop"
)

// CSS hooks shared with the site stylesheet.
const (
	DropdownSelector = "#search-results-dropdown"
	InputSelector    = ".search-input"
)

var listingTemplate = template.Must(template.New("listing").Parse(
	`{{- if .Empty -}}
<div class="no-search-results">{{ .NoResultsText }}</div>
{{- else -}}
{{- range .Entries }}
<div class="search-result-item">
<a href="{{ .URL }}" class="search-result-link">
<div class="search-result-image"><img src="{{ .ImageSrc }}" alt="{{ .Title }}"></div>
<div class="search-result-info">
<h4>{{ .Title }}</h4>
<p>{{ .Description }}</p>
<div class="search-result-location"><i class="fas fa-map-marker-alt"></i> {{ .Location }}</div>
</div>
</a>
</div>
{{- end }}
<div class="view-all-results">
<a href="{{ .ViewAllURL }}">{{ .ViewAllText }} <i class="fas fa-arrow-right"></i></a>
</div>
{{- end -}}`))

type listingData struct {
	*searchdrop.Listing
	NoResultsText string
	ViewAllText   string
}

// RenderListing writes the dropdown markup for l. Result fields are escaped,
// so backend data can never inject markup into the page.
func RenderListing(w io.Writer, l *searchdrop.Listing) error {
	if l == nil {
		l = &searchdrop.Listing{}
	}
	return listingTemplate.Execute(w, listingData{
		Listing:       l,
		NoResultsText: searchdrop.NoResultsText,
		ViewAllText:   searchdrop.ViewAllText,
	})
}

// ListingHTML returns the dropdown markup for l as a string.
func ListingHTML(l *searchdrop.Listing) (string, error) {
	var buf bytes.Buffer
	if err := RenderListing(&buf, l); err != nil {
		return "", err
	}
	return buf.String(), nil
}
