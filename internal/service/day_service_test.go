package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/repository"
	"github.com/alexanderramin/milkround/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayService_Resolve_DefaultsToZeroForEveryProduct(t *testing.T) {
	env := newTestEnv(t)

	view, err := env.daySvc.Resolve(context.Background(), testutil.Day)
	require.NoError(t, err)
	require.Len(t, view.Rows, env.catalog.Len())
	for i, row := range view.Rows {
		assert.Equal(t, env.catalog.Products()[i].ID, row.Product.ID)
		assert.Zero(t, row.Total())
		assert.Equal(t, domain.SourceSchedule, row.Source)
	}
	assert.Zero(t, view.TotalLiters())
	assert.False(t, view.Overridden)
}

func TestDayService_Resolve_LayersOverridesOnSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.scheduleSvc.Save(ctx, testutil.NewTestSchedule(
		testutil.Line("cow", 2, 1),
		testutil.Line("buffalo", 1, 0),
	)))
	require.NoError(t, env.overrideSvc.Skip(ctx, testutil.Day, "buffalo"))
	require.NoError(t, env.overrideSvc.Adjust(ctx, testutil.Day, "cow", 5, 0))

	view, err := env.daySvc.Resolve(ctx, testutil.Day)
	require.NoError(t, err)
	byID := map[string]domain.EffectiveDayRow{}
	for _, r := range view.Rows {
		byID[r.Product.ID] = r
	}
	assert.Equal(t, 5.0, byID["cow"].LitersMorning, "adjust replaces, never adds")
	assert.Equal(t, 0.0, byID["cow"].LitersEvening)
	assert.Equal(t, domain.SourceAdjust, byID["cow"].Source)
	assert.Equal(t, 0.0, byID["buffalo"].Total())
	assert.Equal(t, domain.SourceSkip, byID["buffalo"].Source)
	assert.Equal(t, 5.0, view.TotalLiters())
	assert.Equal(t, 300.0, view.Amount)
	assert.True(t, view.Overridden)

	// Date isolation: the next day is back on the schedule.
	next, err := env.daySvc.Resolve(ctx, testutil.Day.AddDays(1))
	require.NoError(t, err)
	assert.Equal(t, 4.0, next.TotalLiters())
	assert.False(t, next.Overridden)
}

func TestDayService_Resolve_ResetRestoresSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.scheduleSvc.Save(ctx, testutil.NewTestSchedule(testutil.Line("cow", 1, 0))))
	require.NoError(t, env.overrideSvc.Adjust(ctx, testutil.Day, "cow", 0, 0))

	view, err := env.daySvc.Resolve(ctx, testutil.Day)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceAdjust, view.Rows[0].Source)
	assert.Zero(t, view.TotalLiters())

	require.NoError(t, env.overrideSvc.Reset(ctx, testutil.Day, "cow"))
	view, err = env.daySvc.Resolve(ctx, testutil.Day)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSchedule, view.Rows[0].Source)
	assert.Equal(t, 1.0, view.TotalLiters())
}

func TestDayService_Resolve_EndToEndScenario(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	cat, err := catalog.New([]domain.Product{testutil.NewTestProduct("cow", testutil.WithPrice(80))})
	require.NoError(t, err)

	schedules := repository.NewSQLiteScheduleRepo(database)
	overrides := repository.NewSQLiteOverrideRepo(database)
	uow := testutil.NewTestUoW(database)
	scheduleSvc := NewScheduleService(schedules, cat, uow)
	overrideSvc := NewOverrideService(overrides, cat, uow)
	daySvc := NewDayService(schedules, overrides, cat)

	require.NoError(t, scheduleSvc.Save(ctx, testutil.NewTestSchedule(testutil.Line("cow", 1, 0))))
	require.NoError(t, overrideSvc.Adjust(ctx, domain.MustParseDate("2024-05-01"), "cow", 0, 2))

	may1, err := daySvc.Resolve(ctx, domain.MustParseDate("2024-05-01"))
	require.NoError(t, err)
	require.Len(t, may1.Rows, 1)
	assert.Equal(t, 0.0, may1.Rows[0].LitersMorning)
	assert.Equal(t, 2.0, may1.Rows[0].LitersEvening)
	assert.Equal(t, 160.0, may1.Amount)

	may2, err := daySvc.Resolve(ctx, domain.MustParseDate("2024-05-02"))
	require.NoError(t, err)
	require.Len(t, may2.Rows, 1)
	assert.Equal(t, 1.0, may2.Rows[0].LitersMorning)
	assert.Equal(t, 0.0, may2.Rows[0].LitersEvening)
}

func TestDayService_History_PreviousDaysNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.scheduleSvc.Save(ctx, testutil.NewTestSchedule(testutil.Line("cow", 1, 0.5))))
	require.NoError(t, env.overrideSvc.Skip(ctx, testutil.Day.AddDays(-2), "cow"))
	require.NoError(t, env.overrideSvc.Adjust(ctx, testutil.Day, "cow", 9, 9))

	resp, err := env.daySvc.History(ctx, contract.NewHistoryRequest(testutil.Day))
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, testutil.Day.AddDays(-1), resp.Days[0].Date)
	assert.Equal(t, testutil.Day.AddDays(-7), resp.Days[6].Date)

	assert.Equal(t, 1.5, resp.Days[0].Liters)
	assert.Equal(t, 90.0, resp.Days[0].Amount)
	assert.True(t, resp.Days[1].NoOrder())
	for _, d := range resp.Days {
		assert.NotEqual(t, testutil.Day, d.Date, "the viewed day is not part of its history")
	}
}

func TestDayService_History_DefaultsDays(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.daySvc.History(context.Background(), contract.HistoryRequest{Date: testutil.Day, Days: -3})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 7)
}
