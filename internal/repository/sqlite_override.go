package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/milkround/internal/db"
	"github.com/alexanderramin/milkround/internal/domain"
)

// SQLiteOverrideRepo implements OverrideRepo using a SQLite database.
type SQLiteOverrideRepo struct {
	db db.DBTX
}

// NewSQLiteOverrideRepo creates a new SQLiteOverrideRepo.
func NewSQLiteOverrideRepo(conn db.DBTX) *SQLiteOverrideRepo {
	return &SQLiteOverrideRepo{db: conn}
}

// Upsert stores o, replacing any override already recorded for its
// (date, product) key.
func (r *SQLiteOverrideRepo) Upsert(ctx context.Context, o domain.Override) error {
	m, e := o.LitersMorning, o.LitersEvening
	if o.Kind == domain.OverrideSkip {
		m, e = 0, 0
	}
	query := `INSERT INTO day_overrides (date, product_id, kind, liters_morning, liters_evening, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, product_id) DO UPDATE SET
			kind = excluded.kind,
			liters_morning = excluded.liters_morning,
			liters_evening = excluded.liters_evening,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, o.Date.String(), o.ProductID, string(o.Kind), m, e, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting override %s/%s: %w", o.Date, o.ProductID, err)
	}
	return nil
}

func (r *SQLiteOverrideRepo) ListByDate(ctx context.Context, date domain.Date) ([]domain.Override, error) {
	query := `SELECT date, product_id, kind, liters_morning, liters_evening, updated_at
		FROM day_overrides WHERE date = ? ORDER BY product_id`
	rows, err := r.db.QueryContext(ctx, query, date.String())
	if err != nil {
		return nil, fmt.Errorf("listing overrides by date: %w", err)
	}
	defer rows.Close()
	return r.scanOverrides(rows)
}

// ListBetween returns overrides with from <= date <= to, oldest first.
func (r *SQLiteOverrideRepo) ListBetween(ctx context.Context, from, to domain.Date) ([]domain.Override, error) {
	query := `SELECT date, product_id, kind, liters_morning, liters_evening, updated_at
		FROM day_overrides WHERE date >= ? AND date <= ? ORDER BY date, product_id`
	rows, err := r.db.QueryContext(ctx, query, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("listing overrides between dates: %w", err)
	}
	defer rows.Close()
	return r.scanOverrides(rows)
}

// Delete removes the override for (date, productID). Deleting a missing
// override is not an error.
func (r *SQLiteOverrideRepo) Delete(ctx context.Context, date domain.Date, productID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM day_overrides WHERE date = ? AND product_id = ?`, date.String(), productID)
	if err != nil {
		return fmt.Errorf("deleting override: %w", err)
	}
	return nil
}

func (r *SQLiteOverrideRepo) scanOverrides(rows *sql.Rows) ([]domain.Override, error) {
	var out []domain.Override
	for rows.Next() {
		var o domain.Override
		var dateStr, kind, updatedAtStr string
		if err := rows.Scan(&dateStr, &o.ProductID, &kind, &o.LitersMorning, &o.LitersEvening, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning override row: %w", err)
		}

		var err error
		if o.Date, err = parseDateColumn("date", dateStr); err != nil {
			return nil, err
		}
		o.Kind = domain.OverrideKind(kind)
		if o.UpdatedAt, err = parseTimestamp("updated_at", updatedAtStr); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overrides: %w", err)
	}
	return out, nil
}
