package scheduler

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveDay_Invariants_RandomInputs checks, over random schedules and
// overrides, that output follows the catalog and each row matches the
// layering rule for its product.
func TestResolveDay_Invariants_RandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d", "e"}

	for trial := 0; trial < 200; trial++ {
		var products []domain.Product
		for _, id := range ids {
			if rng.Intn(4) > 0 {
				products = append(products, domain.Product{ID: id, Name: id, PricePerLiter: float64(rng.Intn(100) + 1)})
			}
		}

		var schedule domain.Schedule
		for _, id := range ids {
			if rng.Intn(2) == 0 {
				schedule.Lines = append(schedule.Lines, domain.ScheduleLine{
					ProductID:     id,
					LitersMorning: float64(rng.Intn(8)) / 2,
					LitersEvening: float64(rng.Intn(8)) / 2,
				})
			}
		}

		overrides := map[string]domain.Override{}
		for _, id := range ids {
			switch rng.Intn(3) {
			case 0:
				overrides[id] = domain.SkipOverride(testDate, id)
			case 1:
				overrides[id] = domain.AdjustOverride(testDate, id, float64(rng.Intn(6))/2, float64(rng.Intn(6))/2)
			}
		}

		rows := ResolveDay(testDate, schedule, overrides, products)
		require.Len(t, rows, len(products), "trial %d", trial)

		for i, r := range rows {
			assert.Equal(t, products[i], r.Product, "trial %d: row %d out of catalog order", trial, i)

			o, hasOverride := overrides[r.Product.ID]
			line, _ := schedule.Line(r.Product.ID)
			switch {
			case !hasOverride:
				assert.Equal(t, line.LitersMorning, r.LitersMorning)
				assert.Equal(t, line.LitersEvening, r.LitersEvening)
			case o.Kind == domain.OverrideSkip:
				assert.Equal(t, 0.0, r.Total())
			default:
				assert.Equal(t, o.LitersMorning, r.LitersMorning)
				assert.Equal(t, o.LitersEvening, r.LitersEvening)
			}
			assert.GreaterOrEqual(t, r.LitersMorning, 0.0)
			assert.GreaterOrEqual(t, r.LitersEvening, 0.0)
		}

		// Resolving an unrelated date with the same overrides falls back to the schedule.
		other := ResolveDay(testDate.AddDays(1+rng.Intn(30)), schedule, overrides, products)
		for _, r := range other {
			line, _ := schedule.Line(r.Product.ID)
			assert.Equal(t, line.Total(), r.Total(), "trial %d: override leaked to another date", trial)
		}
	}
}
