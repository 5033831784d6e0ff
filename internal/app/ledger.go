package app

import (
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/shopspring/decimal"
)

// StatementRequest bounds a ledger statement. A nil From starts at the
// customer's start date, or at the first of To's month when none is set. A nil
// To means today.
type StatementRequest struct {
	From *domain.Date
	To   *domain.Date
}

type MonthStatement struct {
	Month     domain.MonthKey
	Liters    float64
	Purchased decimal.Decimal
	Paid      decimal.Decimal
	Due       decimal.Decimal
}

type StatementResponse struct {
	From           domain.Date
	To             domain.Date
	Months         []MonthStatement
	TotalLiters    float64
	TotalPurchased decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalDue       decimal.Decimal
}
