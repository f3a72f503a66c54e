package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/searchdrop"
)

// Run executes the log command.
func (c *LogCmd) Run(deps *Dependencies) error {
	filter := searchdrop.SearchLogFilter{
		FailedOnly: c.Failed,
		Limit:      c.Limit,
		Offset:     c.Offset,
	}
	if c.Query != "" {
		q := searchdrop.NormalizeQuery(c.Query)
		filter.Query = &q
	}

	entries, err := deps.SearchLog.FindSearches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches recorded.")
		return nil
	}

	for _, e := range entries {
		outcome := fmt.Sprintf("%d results", e.ResultCount)
		if e.Failed() {
			outcome = "failed: " + e.Error
		}
		fmt.Fprintf(deps.Stdout, "%s  %-24q  %-8s  %s\n",
			e.CreatedAt.Local().Format(time.DateTime), e.Query, e.Duration.Round(time.Millisecond), outcome)
	}

	return nil
}
