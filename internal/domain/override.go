package domain

import "time"

// Override is a date-local exception to the schedule for one product.
// At most one override exists per (Date, ProductID); a later write replaces it.
type Override struct {
	Date      Date
	ProductID string
	Kind      OverrideKind

	// Quantities apply only to OverrideAdjust. An adjust to 0/0 is a recorded
	// "none today", distinct from having no override at all.
	LitersMorning float64
	LitersEvening float64

	UpdatedAt time.Time
}

// SkipOverride builds a skip for productID on date.
func SkipOverride(date Date, productID string) Override {
	return Override{Date: date, ProductID: productID, Kind: OverrideSkip}
}

// AdjustOverride builds a quantity replacement for productID on date.
func AdjustOverride(date Date, productID string, morning, evening float64) Override {
	return Override{
		Date:          date,
		ProductID:     productID,
		Kind:          OverrideAdjust,
		LitersMorning: morning,
		LitersEvening: evening,
	}
}

// Quantities returns the effective per-shift liters the override imposes.
func (o Override) Quantities() (morning, evening float64) {
	if o.Kind == OverrideSkip {
		return 0, 0
	}
	return o.LitersMorning, o.LitersEvening
}
