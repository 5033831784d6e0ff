package app

import (
	"context"

	"github.com/alexanderramin/milkround/internal/domain"
)

type ResolveDayUseCase interface {
	Resolve(ctx context.Context, date domain.Date) (*DayView, error)
}

type HistoryUseCase interface {
	History(ctx context.Context, req HistoryRequest) (*HistoryResponse, error)
}

type QuickOrderUseCase interface {
	QuickOrder(ctx context.Context, req QuickOrderRequest) (*QuickOrderResponse, error)
}

type StatementUseCase interface {
	Statement(ctx context.Context, req StatementRequest) (*StatementResponse, error)
}

type RecordPaymentUseCase interface {
	RecordPayment(ctx context.Context, p *domain.Payment) error
}
