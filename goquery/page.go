package goquery

import (
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/searchdrop"
)

// LoadingClass is set on the dropdown while a request is in flight.
const LoadingClass = "loading"

// Compile-time interface verification.
var (
	_ searchdrop.Dropdown         = (*Page)(nil)
	_ searchdrop.LoadingIndicator = (*Page)(nil)
)

// Page is a parsed HTML document holding a search input and its dropdown.
// Show and Hide mutate the document the way the site script mutates the DOM.
// Page is safe for concurrent use.
type Page struct {
	mu       sync.Mutex
	doc      *goquery.Document
	input    *goquery.Selection
	dropdown *goquery.Selection
}

// NewPage parses r and locates the search input and dropdown.
// Returns ENOTFOUND when either element is missing.
func NewPage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, searchdrop.Errorf(searchdrop.EINVALID, "failed to parse HTML: %v", err)
	}

	input := doc.Find(InputSelector).First()
	if input.Length() == 0 {
		return nil, searchdrop.Errorf(searchdrop.ENOTFOUND, "search input %s not found", InputSelector)
	}
	dropdown := doc.Find(DropdownSelector).First()
	if dropdown.Length() == 0 {
		return nil, searchdrop.Errorf(searchdrop.ENOTFOUND, "search dropdown %s not found", DropdownSelector)
	}

	return &Page{doc: doc, input: input, dropdown: dropdown}, nil
}

// Show replaces the dropdown content with listing and makes it visible.
func (p *Page) Show(listing *searchdrop.Listing) {
	markup, err := ListingHTML(listing)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.dropdown.SetText(searchdrop.FormatListing(listing))
	} else {
		p.dropdown.SetHtml(markup)
	}
	setDisplay(p.dropdown, "block")
}

// Hide makes the dropdown invisible without changing its content.
func (p *Page) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	setDisplay(p.dropdown, "none")
}

// SetLoading toggles the loading class on the dropdown.
func (p *Page) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if loading {
		p.dropdown.AddClass(LoadingClass)
	} else {
		p.dropdown.RemoveClass(LoadingClass)
	}
}

// Visible reports whether the dropdown is displayed.
func (p *Page) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return display(p.dropdown) == "block"
}

// Region reports which region the first element matching selector lies in.
// An unmatched selector is outside.
func (p *Page) Region(selector string) searchdrop.Region {
	p.mu.Lock()
	defer p.mu.Unlock()

	target := p.doc.Find(selector).First()
	switch {
	case target.Length() == 0:
		return searchdrop.RegionOutside
	case contains(p.input, target):
		return searchdrop.RegionInput
	case contains(p.dropdown, target):
		return searchdrop.RegionDropdown
	default:
		return searchdrop.RegionOutside
	}
}

// DropdownHTML returns the inner markup of the dropdown.
func (p *Page) DropdownHTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropdown.Html()
}

// HTML renders the whole document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return goquery.OuterHtml(p.doc.Selection)
}

// contains reports whether target is container or one of its descendants.
func contains(container, target *goquery.Selection) bool {
	return container.IsSelection(target) || container.Contains(target.Get(0))
}

// display returns the value of the display declaration in the style attribute.
func display(sel *goquery.Selection) string {
	style, _ := sel.Attr("style")
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(name) == "display" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// setDisplay sets the display declaration, keeping the other declarations.
func setDisplay(sel *goquery.Selection, value string) {
	style, _ := sel.Attr("style")
	decls := []string{"display: " + value}
	for _, decl := range strings.Split(style, ";") {
		name, _, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(name) == "display" {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	sel.SetAttr("style", strings.Join(decls, "; "))
}
