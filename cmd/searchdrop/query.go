package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/searchdrop"
	"github.com/fwojciec/searchdrop/goquery"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	query := searchdrop.NormalizeQuery(c.Text)
	if !searchdrop.IsSearchable(query) {
		err := searchdrop.Errorf(searchdrop.EINVALID, "query must be at least %d characters", searchdrop.MinQueryLength)
		fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
		return err
	}

	begin := time.Now()
	results, err := deps.Searcher.Search(deps.Ctx, query)
	recordSearch(deps, query, len(results), err, time.Since(begin))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
		return err
	}

	listing := searchdrop.NewListing(query, results, deps.Config.StaticRoot)

	if c.HTML {
		out, err := goquery.ListingHTML(listing)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, out)
		return nil
	}

	if deps.Inliner != nil {
		for i := range listing.Entries {
			listing.Entries[i].Description = deps.Inliner.Inline(listing.Entries[i].Description)
		}
	}
	fmt.Fprintln(deps.Stdout, searchdrop.FormatListing(listing))
	return nil
}

// recordSearch adds a one-off search to the search log, if there is one.
// Failures to record are logged and otherwise ignored.
func recordSearch(deps *Dependencies, query string, count int, searchErr error, took time.Duration) {
	if deps.SearchLog == nil {
		return
	}
	entry := &searchdrop.SearchLogEntry{
		Query:       query,
		ResultCount: count,
		Duration:    took,
	}
	if searchErr != nil {
		entry.Error = searchErr.Error()
	}
	if err := deps.SearchLog.RecordSearch(deps.Ctx, entry); err != nil && deps.Logger != nil {
		deps.Logger.Warn("failed to record search", "query", query, "err", err)
	}
}
