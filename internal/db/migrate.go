package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per product in the standing order. position keeps the order
	// the lines were saved in.
	`CREATE TABLE IF NOT EXISTS schedule_lines (
		product_id     TEXT PRIMARY KEY,
		liters_morning REAL NOT NULL DEFAULT 0,
		liters_evening REAL NOT NULL DEFAULT 0,
		position       INTEGER NOT NULL DEFAULT 0,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS day_overrides (
		date           TEXT NOT NULL,
		product_id     TEXT NOT NULL,
		kind           TEXT NOT NULL CHECK(kind IN ('skip','adjust')),
		liters_morning REAL NOT NULL DEFAULT 0,
		liters_evening REAL NOT NULL DEFAULT 0,
		updated_at     TEXT NOT NULL,
		PRIMARY KEY (date, product_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_day_overrides_date ON day_overrides(date)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id         TEXT PRIMARY KEY,
		paid_on    TEXT NOT NULL,
		amount     REAL NOT NULL CHECK(amount > 0),
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_payments_paid_on ON payments(paid_on)`,

	`CREATE TABLE IF NOT EXISTS customer_profile (
		id         TEXT PRIMARY KEY DEFAULT 'default',
		name       TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		started_on TEXT
	)`,

	// Seed default customer profile
	`INSERT OR IGNORE INTO customer_profile (id) VALUES ('default')`,

	// Add payment method to payments
	`ALTER TABLE payments ADD COLUMN method TEXT NOT NULL DEFAULT 'cash'`,
}
