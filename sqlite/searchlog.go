package sqlite

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/searchdrop"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ searchdrop.SearchLog = (*SearchLog)(nil)

// SearchLog implements searchdrop.SearchLog using SQLite.
type SearchLog struct {
	db *DB
}

// NewSearchLog creates a new SearchLog.
func NewSearchLog(db *DB) *SearchLog {
	return &SearchLog{db: db}
}

// QueryHash returns the hex-encoded xxhash of a query. Entries for the same
// query share a hash, which keeps lookups on the indexed column.
func QueryHash(query string) string {
	return strconv.FormatUint(xxhash.Sum64String(query), 16)
}

// RecordSearch stores a search log entry.
func (s *SearchLog) RecordSearch(ctx context.Context, entry *searchdrop.SearchLogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.QueryHash = QueryHash(entry.Query)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, query, query_hash, token, result_count, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Query, entry.QueryHash, int64(entry.Token), entry.ResultCount, entry.Error,
		entry.Duration.Milliseconds(), entry.CreatedAt.Format(time.RFC3339Nano))

	return err
}

// FindSearches retrieves entries matching the filter, newest first.
func (s *SearchLog) FindSearches(ctx context.Context, filter searchdrop.SearchLogFilter) ([]*searchdrop.SearchLogEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, query, query_hash, token, result_count, error, duration_ms, created_at FROM searches WHERE 1=1")

	if filter.Query != nil {
		query.WriteString(" AND query_hash = ? AND query = ?")
		args = append(args, QueryHash(*filter.Query), *filter.Query)
	}
	if filter.FailedOnly {
		query.WriteString(" AND error != ''")
	}

	query.WriteString(" ORDER BY seq DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*searchdrop.SearchLogEntry
	for rows.Next() {
		var entry searchdrop.SearchLogEntry
		var token, durationMS int64
		var createdAt string

		if err := rows.Scan(&entry.ID, &entry.Query, &entry.QueryHash, &token, &entry.ResultCount,
			&entry.Error, &durationMS, &createdAt); err != nil {
			return nil, err
		}

		entry.Token = uint64(token)
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		entry.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
