package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/searchdrop"
	"github.com/fwojciec/searchdrop/goquery"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	query := searchdrop.NormalizeQuery(c.Query)
	if !searchdrop.IsSearchable(query) {
		err := searchdrop.Errorf(searchdrop.EINVALID, "query must be at least %d characters", searchdrop.MinQueryLength)
		fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
		return err
	}

	var r io.Reader = deps.Stdin
	if c.Page != "-" {
		f, err := os.Open(c.Page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		r = f
	}

	page, err := goquery.NewPage(r)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
		return err
	}

	results, err := deps.Searcher.Search(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
		return err
	}
	page.Show(searchdrop.NewListing(query, results, deps.Config.StaticRoot))

	out, err := page.HTML()
	if err != nil {
		return err
	}
	_, err = io.WriteString(deps.Stdout, out)
	return err
}
