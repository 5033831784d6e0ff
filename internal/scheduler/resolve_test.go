package scheduler

import (
	"testing"

	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDate = domain.MustParseDate("2024-05-01")
	p1       = domain.Product{ID: "p1", Name: "Cow Milk", PricePerLiter: 60}
	p2       = domain.Product{ID: "p2", Name: "Buffalo Milk", PricePerLiter: 70}
	p3       = domain.Product{ID: "p3", Name: "A2 Milk", PricePerLiter: 90}
)

func baselineSchedule() domain.Schedule {
	return domain.Schedule{Lines: []domain.ScheduleLine{{ProductID: "p1", LitersMorning: 2, LitersEvening: 1}}}
}

func TestResolveDay_EmptyScheduleYieldsZeros(t *testing.T) {
	rows := ResolveDay(testDate, domain.Schedule{}, map[string]domain.Override{}, []domain.Product{p1, p2, p3})

	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, 0.0, r.LitersMorning, r.Product.ID)
		assert.Equal(t, 0.0, r.LitersEvening, r.Product.ID)
		assert.Equal(t, domain.SourceSchedule, r.Source)
	}
}

func TestResolveDay_ScheduleBaseline(t *testing.T) {
	rows := ResolveDay(testDate, baselineSchedule(), nil, []domain.Product{p1})

	require.Len(t, rows, 1)
	assert.Equal(t, p1, rows[0].Product)
	assert.Equal(t, 2.0, rows[0].LitersMorning)
	assert.Equal(t, 1.0, rows[0].LitersEvening)
}

func TestResolveDay_SkipZeroesBaseline(t *testing.T) {
	overrides := map[string]domain.Override{"p1": domain.SkipOverride(testDate, "p1")}
	rows := ResolveDay(testDate, baselineSchedule(), overrides, []domain.Product{p1})

	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].LitersMorning)
	assert.Equal(t, 0.0, rows[0].LitersEvening)
	assert.Equal(t, domain.SourceSkip, rows[0].Source)
}

func TestResolveDay_SkipWithoutDateApplies(t *testing.T) {
	overrides := map[string]domain.Override{"p1": {ProductID: "p1", Kind: domain.OverrideSkip}}
	rows := ResolveDay(testDate, baselineSchedule(), overrides, []domain.Product{p1})
	assert.Equal(t, 0.0, rows[0].Total())
}

func TestResolveDay_AdjustReplacesNotAdds(t *testing.T) {
	overrides := map[string]domain.Override{"p1": domain.AdjustOverride(testDate, "p1", 5, 0)}
	rows := ResolveDay(testDate, baselineSchedule(), overrides, []domain.Product{p1})

	require.Len(t, rows, 1)
	assert.Equal(t, 5.0, rows[0].LitersMorning)
	assert.Equal(t, 0.0, rows[0].LitersEvening)
	assert.Equal(t, domain.SourceAdjust, rows[0].Source)
}

func TestResolveDay_ZeroAdjustIsRecordedAsAdjust(t *testing.T) {
	overrides := map[string]domain.Override{"p1": domain.AdjustOverride(testDate, "p1", 0, 0)}
	rows := ResolveDay(testDate, baselineSchedule(), overrides, []domain.Product{p1})

	assert.Equal(t, 0.0, rows[0].Total())
	assert.Equal(t, domain.SourceAdjust, rows[0].Source, "zero adjust must stay distinguishable from no override")
}

func TestResolveDay_OverrideForOtherDateIgnored(t *testing.T) {
	other := testDate.AddDays(1)
	overrides := map[string]domain.Override{"p1": domain.SkipOverride(other, "p1")}
	rows := ResolveDay(testDate, baselineSchedule(), overrides, []domain.Product{p1})

	assert.Equal(t, 3.0, rows[0].Total())
	assert.Equal(t, domain.SourceSchedule, rows[0].Source)
}

func TestResolveDay_CatalogDrivesOrderAndMembership(t *testing.T) {
	schedule := domain.Schedule{Lines: []domain.ScheduleLine{
		{ProductID: "p3", LitersMorning: 1},
		{ProductID: "gone", LitersMorning: 9},
		{ProductID: "p1", LitersEvening: 1},
	}}
	overrides := map[string]domain.Override{
		"removed": domain.AdjustOverride(testDate, "removed", 4, 4),
	}
	rows := ResolveDay(testDate, schedule, overrides, []domain.Product{p1, p2, p3})

	require.Len(t, rows, 3)
	assert.Equal(t, "p1", rows[0].Product.ID)
	assert.Equal(t, "p2", rows[1].Product.ID)
	assert.Equal(t, "p3", rows[2].Product.ID)
	assert.Equal(t, 1.0, rows[0].LitersEvening)
	assert.Equal(t, 0.0, rows[1].Total())
	assert.Equal(t, 1.0, rows[2].LitersMorning)
}

func TestResolveDay_EmptyCatalog(t *testing.T) {
	rows := ResolveDay(testDate, baselineSchedule(), nil, nil)
	assert.Empty(t, rows)
}

func TestResolveDay_DoesNotMutateInputs(t *testing.T) {
	schedule := baselineSchedule()
	overrides := map[string]domain.Override{"p1": domain.AdjustOverride(testDate, "p1", 5, 0)}
	products := []domain.Product{p1}

	first := ResolveDay(testDate, schedule, overrides, products)
	second := ResolveDay(testDate, schedule, overrides, products)

	assert.Equal(t, first, second)
	assert.Equal(t, baselineSchedule(), schedule)
	assert.Len(t, overrides, 1)
}

func TestTotals(t *testing.T) {
	schedule := domain.Schedule{Lines: []domain.ScheduleLine{
		{ProductID: "p1", LitersMorning: 1, LitersEvening: 0.5},
		{ProductID: "p2", LitersEvening: 2},
	}}
	totals := Totals(ResolveDay(testDate, schedule, nil, []domain.Product{p1, p2}))

	assert.Equal(t, 1.0, totals.LitersMorning)
	assert.Equal(t, 2.5, totals.LitersEvening)
	assert.Equal(t, 3.5, totals.Liters())
	assert.InDelta(t, 1.5*60+2*70, totals.Amount, 1e-9)
}

func TestResolveRange_EndToEnd(t *testing.T) {
	cow := domain.Product{ID: "cow", Name: "Cow", PricePerLiter: 80}
	schedule := domain.Schedule{Lines: []domain.ScheduleLine{{ProductID: "cow", LitersMorning: 1}}}
	overrides := []domain.Override{domain.AdjustOverride(domain.MustParseDate("2024-05-01"), "cow", 0, 2)}

	days := ResolveRange(domain.MustParseDate("2024-05-01"), domain.MustParseDate("2024-05-02"),
		schedule, overrides, []domain.Product{cow})

	require.Len(t, days, 2)
	assert.Equal(t, 0.0, days[0].Rows[0].LitersMorning)
	assert.Equal(t, 2.0, days[0].Rows[0].LitersEvening)
	assert.Equal(t, 1.0, days[1].Rows[0].LitersMorning)
	assert.Equal(t, 0.0, days[1].Rows[0].LitersEvening)
	assert.Equal(t, 160.0, days[0].Totals.Amount)
}

func TestResolveRange_Inverted(t *testing.T) {
	assert.Nil(t, ResolveRange(testDate, testDate.AddDays(-1), domain.Schedule{}, nil, []domain.Product{p1}))
}
