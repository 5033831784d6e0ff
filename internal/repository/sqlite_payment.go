package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/milkround/internal/db"
	"github.com/alexanderramin/milkround/internal/domain"
)

// SQLitePaymentRepo implements PaymentRepo using a SQLite database.
type SQLitePaymentRepo struct {
	db db.DBTX
}

// NewSQLitePaymentRepo creates a new SQLitePaymentRepo.
func NewSQLitePaymentRepo(conn db.DBTX) *SQLitePaymentRepo {
	return &SQLitePaymentRepo{db: conn}
}

const paymentColumns = `id, paid_on, amount, method, note, created_at`

func (r *SQLitePaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, paid_on, amount, method, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.PaidOn.String(),
		p.Amount,
		p.Method,
		p.Note,
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}

func (r *SQLitePaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var p domain.Payment
	var paidOnStr, createdAtStr string
	err := row.Scan(&p.ID, &paidOnStr, &p.Amount, &p.Method, &p.Note, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning payment: %w", err)
	}
	return populatePayment(&p, paidOnStr, createdAtStr)
}

// List returns every payment, newest first.
func (r *SQLitePaymentRepo) List(ctx context.Context) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY paid_on DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListBetween returns payments with from <= paid_on <= to, oldest first.
func (r *SQLitePaymentRepo) ListBetween(ctx context.Context, from, to domain.Date) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE paid_on >= ? AND paid_on <= ?
		ORDER BY paid_on, created_at`
	rows, err := r.db.QueryContext(ctx, query, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("listing payments between dates: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *SQLitePaymentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanPayments(rows *sql.Rows) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		var paidOnStr, createdAtStr string
		if err := rows.Scan(&p.ID, &paidOnStr, &p.Amount, &p.Method, &p.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning payment row: %w", err)
		}
		payment, err := populatePayment(&p, paidOnStr, createdAtStr)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}
	return payments, nil
}

// populatePayment fills in parsed fields on a Payment after scanning raw strings.
func populatePayment(p *domain.Payment, paidOnStr, createdAtStr string) (*domain.Payment, error) {
	var err error
	if p.PaidOn, err = parseDateColumn("paid_on", paidOnStr); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTimestamp("created_at", createdAtStr); err != nil {
		return nil, err
	}
	return p, nil
}
