package contract

import (
	"github.com/alexanderramin/milkround/internal/app"
	"github.com/alexanderramin/milkround/internal/domain"
)

type QuickOrderLine = app.QuickOrderLine

type QuickOrderRequest = app.QuickOrderRequest

func NewQuickOrderRequest(date domain.Date) QuickOrderRequest {
	return app.NewQuickOrderRequest(date)
}

type QuickOrderResponse = app.QuickOrderResponse
