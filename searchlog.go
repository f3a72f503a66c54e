package searchdrop

import (
	"context"
	"time"
)

// SearchLogEntry records one issued search request and its outcome.
// The log is operator-facing; users never see it.
type SearchLogEntry struct {
	ID          string        `json:"id"`
	Query       string        `json:"query"`
	QueryHash   string        `json:"queryHash"`
	Token       uint64        `json:"token"`
	ResultCount int           `json:"resultCount"`
	Error       string        `json:"error"`
	Duration    time.Duration `json:"duration"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *SearchLogEntry) Validate() error {
	if e.Query == "" {
		return Errorf(EINVALID, "search log query required")
	}
	if e.ResultCount < 0 {
		return Errorf(EINVALID, "search log result count must not be negative")
	}
	return nil
}

// Failed reports whether the request ended in a network or parsing failure.
func (e *SearchLogEntry) Failed() bool {
	return e.Error != ""
}

// SearchLog persists issued search requests for operators.
type SearchLog interface {
	// RecordSearch stores entry, assigning its ID, hash, and timestamp.
	RecordSearch(ctx context.Context, entry *SearchLogEntry) error

	// FindSearches returns entries matching the filter, newest first.
	FindSearches(ctx context.Context, filter SearchLogFilter) ([]*SearchLogEntry, error)
}

// SearchLogFilter represents a filter for FindSearches.
type SearchLogFilter struct {
	Query      *string `json:"query"`
	FailedOnly bool    `json:"failedOnly"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
