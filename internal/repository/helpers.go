package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/milkround/internal/domain"
)

// parseNullableDate parses a sql.NullString into a *domain.Date.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableDate(s sql.NullString) *domain.Date {
	if !s.Valid || s.String == "" {
		return nil
	}
	d, err := domain.ParseDate(s.String)
	if err != nil {
		return nil
	}
	return &d
}

// nullableDateToString converts a *domain.Date to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableDateToString(d *domain.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

// parseDateColumn parses a NOT NULL date column, naming the column on failure.
func parseDateColumn(column, value string) (domain.Date, error) {
	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return d, nil
}

// parseTimestamp parses an RFC3339 timestamp column.
func parseTimestamp(column, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
