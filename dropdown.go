package searchdrop

import (
	"strconv"
	"strings"
)

// DropdownState describes what the dropdown region currently displays.
type DropdownState int

// DropdownState values.
const (
	DropdownHidden DropdownState = iota
	DropdownLoading
	DropdownResults
	DropdownEmpty
)

func (s DropdownState) String() string {
	switch s {
	case DropdownHidden:
		return "hidden"
	case DropdownLoading:
		return "loading"
	case DropdownResults:
		return "results"
	case DropdownEmpty:
		return "empty"
	default:
		return "DropdownState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Placeholder texts shown in the dropdown.
const (
	NoResultsText = "No results found"
	ViewAllText   = "View all results"
)

// Entry is one rendered search result.
type Entry struct {
	URL         string
	ImageSrc    string
	Title       string
	Description string
	Location    string
}

// Listing is the content of the dropdown for one query. It carries no
// markup; renderers decide how entries look.
type Listing struct {
	Query   string
	Entries []Entry

	// ViewAllURL links to the full search page. Empty when there are no entries.
	ViewAllURL string
}

// Empty reports whether the listing should show the no-results placeholder.
func (l *Listing) Empty() bool {
	return len(l.Entries) == 0
}

// State returns the dropdown state that displaying l corresponds to.
func (l *Listing) State() DropdownState {
	if l.Empty() {
		return DropdownEmpty
	}
	return DropdownResults
}

// NewListing builds the dropdown content for query from results, keeping
// the order the backend returned. Nil results are skipped.
func NewListing(query string, results []*SearchResult, staticRoot string) *Listing {
	l := &Listing{Query: query}
	for _, r := range results {
		if r == nil {
			continue
		}
		l.Entries = append(l.Entries, Entry{
			URL:         r.URL,
			ImageSrc:    ResolveImagePath(staticRoot, r.ImagePath),
			Title:       r.Title,
			Description: r.Description,
			Location:    r.Location(),
		})
	}
	if !l.Empty() {
		l.ViewAllURL = SearchPageURL(query)
	}
	return l
}

// FormatListing formats a listing as plain text, one block per entry
// followed by the "view all" link.
func FormatListing(l *Listing) string {
	if l == nil || l.Empty() {
		return NoResultsText
	}

	parts := make([]string, 0, len(l.Entries)+1)
	for i, e := range l.Entries {
		parts = append(parts, strconv.Itoa(i+1)+". "+e.Title+"\n   "+e.Description+"\n   "+e.Location+"\n   "+e.URL)
	}
	parts = append(parts, ViewAllText+": "+l.ViewAllURL)

	return strings.Join(parts, "\n\n")
}

// Dropdown is the region below the search field that displays results.
// The dispatcher calls it from a single goroutine.
type Dropdown interface {
	// Show replaces the dropdown content with listing and makes it visible.
	Show(listing *Listing)

	// Hide makes the dropdown invisible without changing its content.
	Hide()
}

// LoadingIndicator is implemented by dropdowns that display request progress.
// Content must stay unchanged while loading.
type LoadingIndicator interface {
	SetLoading(loading bool)
}

// Region identifies where a pointer or focus interaction landed.
type Region int

// Region values.
const (
	RegionOutside Region = iota
	RegionInput
	RegionDropdown
)

func (r Region) String() string {
	switch r {
	case RegionOutside:
		return "outside"
	case RegionInput:
		return "input"
	case RegionDropdown:
		return "dropdown"
	default:
		return "Region(" + strconv.Itoa(int(r)) + ")"
	}
}
