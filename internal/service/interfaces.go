package service

import (
	"context"

	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
)

type ScheduleService interface {
	Get(ctx context.Context) (domain.Schedule, error)
	Save(ctx context.Context, s domain.Schedule) error
	SetLine(ctx context.Context, productID string, morning, evening float64) (domain.Schedule, error)
	Step(ctx context.Context, productID string, shift domain.Shift, delta float64) (domain.Schedule, error)
}

type OverrideService interface {
	Set(ctx context.Context, o domain.Override) error
	SetMany(ctx context.Context, overrides []domain.Override) error
	Skip(ctx context.Context, date domain.Date, productID string) error
	Adjust(ctx context.Context, date domain.Date, productID string, morning, evening float64) error
	Reset(ctx context.Context, date domain.Date, productID string) error
	ForDate(ctx context.Context, date domain.Date) (map[string]domain.Override, error)
	Between(ctx context.Context, from, to domain.Date) ([]domain.Override, error)
	QuickOrder(ctx context.Context, req contract.QuickOrderRequest) (*contract.QuickOrderResponse, error)
}

type DayService interface {
	Resolve(ctx context.Context, date domain.Date) (*contract.DayView, error)
	History(ctx context.Context, req contract.HistoryRequest) (*contract.HistoryResponse, error)
}

type LedgerService interface {
	RecordPayment(ctx context.Context, p *domain.Payment) error
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	Statement(ctx context.Context, req contract.StatementRequest) (*contract.StatementResponse, error)
}

type CustomerService interface {
	Get(ctx context.Context) (*domain.CustomerProfile, error)
	Save(ctx context.Context, p *domain.CustomerProfile) error
}
