// Package htmltomarkdown renders result descriptions and full search pages
// as Markdown for terminal display.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/searchdrop"
)

// Ensure Converter implements searchdrop.Converter at compile time.
var _ searchdrop.Converter = (*Converter)(nil)
var _ searchdrop.Inliner = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links and images against the given site URL,
// so article links copied from the reader stay usable.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = strings.TrimSuffix(domain, "/")
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", searchdrop.Errorf(searchdrop.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if c.domain != "" {
		opts = append(opts, converter.WithDomain(c.domain))
	}

	result, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", err
	}

	return result, nil
}

// Inline converts an HTML fragment to a single line of Markdown.
// Descriptions arrive as HTML but must fit one dropdown row.
// Plain text passes through with its whitespace collapsed.
func (c *Converter) Inline(html string) string {
	md, err := c.Convert(html)
	if err != nil {
		md = html
	}
	return strings.Join(strings.Fields(md), " ")
}
