package domain

// EffectiveDayRow is the resolved order for one product on one date.
// It is derived on demand and never persisted.
type EffectiveDayRow struct {
	Product       Product
	LitersMorning float64
	LitersEvening float64
	Source        RowSource
}

// Total returns the liters across both shifts.
func (r EffectiveDayRow) Total() float64 {
	return r.LitersMorning + r.LitersEvening
}

// Amount returns the row's price at the product's per-liter rate.
func (r EffectiveDayRow) Amount() float64 {
	return r.Total() * r.Product.PricePerLiter
}
