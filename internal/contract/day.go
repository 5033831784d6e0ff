package contract

import (
	"github.com/alexanderramin/milkround/internal/app"
	"github.com/alexanderramin/milkround/internal/domain"
)

type DayView = app.DayView

type HistoryRequest = app.HistoryRequest

func NewHistoryRequest(date domain.Date) HistoryRequest {
	return app.NewHistoryRequest(date)
}

type HistoryDay = app.HistoryDay

type HistoryResponse = app.HistoryResponse
