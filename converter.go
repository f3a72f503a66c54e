package searchdrop

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Result descriptions and
	// full search pages are HTML; terminals display the Markdown form.
	Convert(html string) (string, error)
}

// Inliner flattens an HTML fragment, such as a result description, to one
// line of text for terminal display.
type Inliner interface {
	Inline(html string) string
}
