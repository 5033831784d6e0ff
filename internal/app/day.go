package app

import "github.com/alexanderramin/milkround/internal/domain"

// DayView is the resolved order for one calendar day.
type DayView struct {
	Date          domain.Date
	Rows          []domain.EffectiveDayRow
	LitersMorning float64
	LitersEvening float64
	Amount        float64
	// Overridden is true when any row came from an override.
	Overridden bool
}

// TotalLiters is the day's morning plus evening liters.
func (v DayView) TotalLiters() float64 {
	return v.LitersMorning + v.LitersEvening
}

type HistoryRequest struct {
	// Date is the day the history is viewed from; it is not itself included.
	Date domain.Date
	Days int
}

func NewHistoryRequest(date domain.Date) HistoryRequest {
	return HistoryRequest{Date: date, Days: 7}
}

type HistoryDay struct {
	Date   domain.Date
	Liters float64
	Amount float64
}

// NoOrder reports whether nothing was delivered that day.
func (d HistoryDay) NoOrder() bool {
	return d.Liters == 0
}

// HistoryResponse lists days newest first.
type HistoryResponse struct {
	Days []HistoryDay
}
