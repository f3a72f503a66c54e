package searchdrop

import "context"

// Page is a site page prepared for reading in a terminal.
type Page struct {
	URL     string
	Title   string
	Content string // Markdown
}

// PageReader fetches a site page and converts its main content to Markdown.
// Implementations hide fetching, content extraction, and conversion.
type PageReader interface {
	Read(ctx context.Context, url string) (*Page, error)
}

// PageSaver stores a page read in the terminal for later offline reading.
type PageSaver interface {
	// SavePage stores page and returns where it was written.
	SavePage(ctx context.Context, page *Page) (string, error)
}
