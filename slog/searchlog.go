package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/searchdrop"
)

// Ensure LoggingSearchLog implements searchdrop.SearchLog.
var _ searchdrop.SearchLog = (*LoggingSearchLog)(nil)

// LoggingSearchLog mirrors recorded searches into a structured log, so
// failures reach operators even when the database is not being read.
type LoggingSearchLog struct {
	next   searchdrop.SearchLog
	logger *slog.Logger
}

// NewLoggingSearchLog creates a new LoggingSearchLog.
func NewLoggingSearchLog(next searchdrop.SearchLog, logger *slog.Logger) *LoggingSearchLog {
	return &LoggingSearchLog{next: next, logger: logger}
}

// RecordSearch delegates to the wrapped log, then logs the entry.
func (l *LoggingSearchLog) RecordSearch(ctx context.Context, entry *searchdrop.SearchLogEntry) error {
	err := l.next.RecordSearch(ctx, entry)

	level := slog.LevelInfo
	if entry.Failed() || err != nil {
		level = slog.LevelWarn
	}
	l.logger.Log(ctx, level, "search recorded",
		"id", entry.ID,
		"query", entry.Query,
		"token", entry.Token,
		"count", entry.ResultCount,
		"duration", entry.Duration,
		"search_err", entry.Error,
		"err", err,
	)
	return err
}

// FindSearches delegates to the wrapped log.
func (l *LoggingSearchLog) FindSearches(ctx context.Context, filter searchdrop.SearchLogFilter) ([]*searchdrop.SearchLogEntry, error) {
	return l.next.FindSearches(ctx, filter)
}
