package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/milkround/internal/db"
	"github.com/alexanderramin/milkround/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Get(ctx context.Context) (domain.Schedule, error) {
	query := `SELECT product_id, liters_morning, liters_evening
		FROM schedule_lines ORDER BY position, product_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("loading schedule: %w", err)
	}
	defer rows.Close()

	var s domain.Schedule
	for rows.Next() {
		var l domain.ScheduleLine
		if err := rows.Scan(&l.ProductID, &l.LitersMorning, &l.LitersEvening); err != nil {
			return domain.Schedule{}, fmt.Errorf("scanning schedule line: %w", err)
		}
		s.Lines = append(s.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return domain.Schedule{}, fmt.Errorf("iterating schedule lines: %w", err)
	}
	return s, nil
}

func (r *SQLiteScheduleRepo) Replace(ctx context.Context, s domain.Schedule) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_lines`); err != nil {
		return fmt.Errorf("clearing schedule: %w", err)
	}

	query := `INSERT INTO schedule_lines (product_id, liters_morning, liters_evening, position, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	now := nowUTC()
	for i, l := range s.Lines {
		if _, err := r.db.ExecContext(ctx, query, l.ProductID, l.LitersMorning, l.LitersEvening, i, now); err != nil {
			return fmt.Errorf("inserting schedule line %s: %w", l.ProductID, err)
		}
	}
	return nil
}
