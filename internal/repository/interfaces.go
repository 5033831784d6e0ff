package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/milkround/internal/domain"
)

// ErrNotFound is returned when a keyed lookup matches no row.
var ErrNotFound = errors.New("not found")

// ScheduleRepo persists the recurring schedule as a whole.
type ScheduleRepo interface {
	// Get returns the saved schedule, or an empty one when nothing is saved.
	Get(ctx context.Context) (domain.Schedule, error)
	// Replace swaps the stored schedule for s. Run it inside a UnitOfWork
	// so readers never see a partial schedule.
	Replace(ctx context.Context, s domain.Schedule) error
}

type OverrideRepo interface {
	Upsert(ctx context.Context, o domain.Override) error
	ListByDate(ctx context.Context, date domain.Date) ([]domain.Override, error)
	ListBetween(ctx context.Context, from, to domain.Date) ([]domain.Override, error)
	Delete(ctx context.Context, date domain.Date, productID string) error
}

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	ListBetween(ctx context.Context, from, to domain.Date) ([]*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}

type CustomerRepo interface {
	Get(ctx context.Context) (*domain.CustomerProfile, error)
	Upsert(ctx context.Context, p *domain.CustomerProfile) error
}
