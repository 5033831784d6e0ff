package app

import "github.com/alexanderramin/milkround/internal/domain"

type QuickOrderLine struct {
	ProductID     string
	LitersMorning float64
	LitersEvening float64
}

// QuickOrderRequest places a one-off order for Date. A shift that is not
// active is written as 0 liters for every line.
type QuickOrderRequest struct {
	Date    domain.Date
	Morning bool
	Evening bool
	Lines   []QuickOrderLine
}

// NewQuickOrderRequest starts a request with only the morning shift active.
func NewQuickOrderRequest(date domain.Date) QuickOrderRequest {
	return QuickOrderRequest{Date: date, Morning: true}
}

type QuickOrderResponse struct {
	Date        domain.Date
	Overrides   []domain.Override
	TotalLiters float64
	TotalAmount float64
}
