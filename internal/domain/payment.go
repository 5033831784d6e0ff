package domain

import "time"

type Payment struct {
	ID        string
	PaidOn    Date
	Amount    float64
	Method    string
	Note      string
	CreatedAt time.Time
}
