package scheduler

import "github.com/alexanderramin/milkround/internal/domain"

// ResolveDay layers overrides for date on top of the recurring schedule and
// returns one row per catalog product, in catalog order.
//
// The catalog drives iteration: schedule lines and overrides for products not
// in products are ignored. The result depends only on the arguments.
// Overrides are expected to be those recorded for date; entries for any other
// date are ignored.
func ResolveDay(
	date domain.Date,
	schedule domain.Schedule,
	overrides map[string]domain.Override,
	products []domain.Product,
) []domain.EffectiveDayRow {
	lines := make(map[string]domain.ScheduleLine, len(schedule.Lines))
	for _, l := range schedule.Lines {
		if _, seen := lines[l.ProductID]; seen {
			continue
		}
		lines[l.ProductID] = l
	}

	rows := make([]domain.EffectiveDayRow, 0, len(products))
	for _, p := range products {
		row := domain.EffectiveDayRow{Product: p, Source: domain.SourceSchedule}
		if l, ok := lines[p.ID]; ok {
			row.LitersMorning = l.LitersMorning
			row.LitersEvening = l.LitersEvening
		}

		if o, ok := overrides[p.ID]; ok && (o.Date.IsZero() || o.Date == date) {
			switch o.Kind {
			case domain.OverrideSkip:
				row.LitersMorning, row.LitersEvening = 0, 0
				row.Source = domain.SourceSkip
			case domain.OverrideAdjust:
				row.LitersMorning, row.LitersEvening = o.LitersMorning, o.LitersEvening
				row.Source = domain.SourceAdjust
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// DayTotals sums a resolved day.
type DayTotals struct {
	LitersMorning float64
	LitersEvening float64
	Amount        float64
}

func (t DayTotals) Liters() float64 {
	return t.LitersMorning + t.LitersEvening
}

// Totals aggregates rows into per-shift liters and the day's amount.
func Totals(rows []domain.EffectiveDayRow) DayTotals {
	var t DayTotals
	for _, r := range rows {
		t.LitersMorning += r.LitersMorning
		t.LitersEvening += r.LitersEvening
		t.Amount += r.Amount()
	}
	return t
}

// OverridesByDate groups a flat override list into per-date maps keyed by product.
func OverridesByDate(overrides []domain.Override) map[domain.Date]map[string]domain.Override {
	out := make(map[domain.Date]map[string]domain.Override)
	for _, o := range overrides {
		m, ok := out[o.Date]
		if !ok {
			m = make(map[string]domain.Override)
			out[o.Date] = m
		}
		m[o.ProductID] = o
	}
	return out
}

// ResolveRange resolves every day in [from, to] inclusive. Days are returned
// oldest first. An inverted range yields nothing.
func ResolveRange(
	from, to domain.Date,
	schedule domain.Schedule,
	overrides []domain.Override,
	products []domain.Product,
) []ResolvedDay {
	if to.Before(from) {
		return nil
	}
	byDate := OverridesByDate(overrides)
	days := make([]ResolvedDay, 0, from.DaysUntil(to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		rows := ResolveDay(d, schedule, byDate[d], products)
		days = append(days, ResolvedDay{Date: d, Rows: rows, Totals: Totals(rows)})
	}
	return days
}

// ResolvedDay is one date's resolution with its totals.
type ResolvedDay struct {
	Date   domain.Date
	Rows   []domain.EffectiveDayRow
	Totals DayTotals
}
