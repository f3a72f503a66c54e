// Package fs saves pages opened in the terminal reader as Markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/searchdrop"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/article/12 → article/12.md
// The full search page keeps its query: /search?query=car → search/car.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", searchdrop.Errorf(searchdrop.EINVALID, "invalid page URL %q: %v", rawURL, err)
	}

	path := strings.Trim(u.Path, "/")

	if q := slug(u.Query().Get("query")); q != "" {
		if path == "" {
			path = "search"
		}
		return path + "/" + q + ".md", nil
	}

	if path == "" {
		return "index.md", nil
	}
	if strings.HasSuffix(u.Path, "/") {
		return path + "/index.md", nil
	}
	return path + ".md", nil
}

// slug lowercases s and replaces every run of non-alphanumerics with a dash.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *searchdrop.Page, savedAt time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	b.WriteString("\nsaved: ")
	b.WriteString(savedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}

// Ensure Writer implements searchdrop.PageSaver at compile time.
var _ searchdrop.PageSaver = (*Writer)(nil)

// Writer writes pages as markdown files to a directory.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock sets the clock used to stamp saved pages.
func WithClock(c searchdrop.Clock) Option {
	return func(w *Writer) {
		w.now = c.Now
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, opts ...Option) *Writer {
	w := &Writer{baseDir: baseDir, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SavePage writes page to disk as a markdown file and returns its path.
// Saving the same URL again overwrites the earlier copy.
func (w *Writer) SavePage(ctx context.Context, page *searchdrop.Page) (string, error) {
	if page == nil || page.URL == "" {
		return "", searchdrop.Errorf(searchdrop.EINVALID, "page URL required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content := FormatPage(page, w.now())
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
