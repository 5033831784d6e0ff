package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/milkround/internal/db"
	"github.com/alexanderramin/milkround/internal/domain"
)

// SQLiteCustomerRepo implements CustomerRepo using a SQLite database.
type SQLiteCustomerRepo struct {
	db db.DBTX
}

// NewSQLiteCustomerRepo creates a new SQLiteCustomerRepo.
func NewSQLiteCustomerRepo(conn db.DBTX) *SQLiteCustomerRepo {
	return &SQLiteCustomerRepo{db: conn}
}

func (r *SQLiteCustomerRepo) Get(ctx context.Context) (*domain.CustomerProfile, error) {
	query := `SELECT id, name, phone, started_on FROM customer_profile WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultProfileID)

	var p domain.CustomerProfile
	var startedOn sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Phone, &startedOn); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("customer profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning customer profile: %w", err)
	}
	p.StartedOn = parseNullableDate(startedOn)
	return &p, nil
}

func (r *SQLiteCustomerRepo) Upsert(ctx context.Context, p *domain.CustomerProfile) error {
	id := p.ID
	if id == "" {
		id = domain.DefaultProfileID
	}
	query := `INSERT OR REPLACE INTO customer_profile (id, name, phone, started_on)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, id, p.Name, p.Phone, nullableDateToString(p.StartedOn))
	if err != nil {
		return fmt.Errorf("upserting customer profile: %w", err)
	}
	return nil
}
