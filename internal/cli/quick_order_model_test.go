package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuickOrderDriver(t *testing.T, app *App, req contract.QuickOrderRequest) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newQuickOrderModel(context.Background(), app, req), teatest.WithSize(100, 30), teatest.WithCmdTimeout(2*time.Second))
	d.DrainInit()
	return d
}

func quickOrderState(d *teatest.Driver) *quickOrderModel {
	return d.Model.(*quickOrderModel)
}

func TestQuickOrderModel_InitialView(t *testing.T) {
	app := testApp(t)
	d := newQuickOrderDriver(t, app, contract.NewQuickOrderRequest(testToday))

	view := d.PlainView()
	assert.Contains(t, view, "QUICK ORDER · TODAY")
	assert.Contains(t, view, "● Morning")
	assert.Contains(t, view, "○ Evening")
	assert.Contains(t, view, "Cow Milk")
	assert.Contains(t, view, "A2 Cow Milk")
	assert.Contains(t, view, "0.0 L • ₹0.00")
}

func TestQuickOrderModel_StepperAndLiveTotals(t *testing.T) {
	app := testApp(t)
	d := newQuickOrderDriver(t, app, contract.NewQuickOrderRequest(testToday))

	// cow morning +1 L, buffalo evening +0.5 L.
	d.Press("+", "+", "down", "tab", "+")

	m := quickOrderState(d)
	cow, _ := m.qty.Line("cow")
	buffalo, _ := m.qty.Line("buffalo")
	assert.Equal(t, 1.0, cow.LitersMorning)
	assert.Equal(t, 0.5, buffalo.LitersEvening)

	// Evening is off, so only the cow liters count.
	assert.Contains(t, d.PlainView(), "1.0 L • ₹60.00")

	d.Press("e")
	assert.Contains(t, d.PlainView(), "1.5 L • ₹95.00")
}

func TestQuickOrderModel_StepDownClampsAtZero(t *testing.T) {
	app := testApp(t)
	d := newQuickOrderDriver(t, app, contract.NewQuickOrderRequest(testToday))

	d.Press("-", "-", "+")

	cow, _ := quickOrderState(d).qty.Line("cow")
	assert.Equal(t, 0.5, cow.LitersMorning)
}

func TestQuickOrderModel_CursorStaysInBounds(t *testing.T) {
	app := testApp(t)
	d := newQuickOrderDriver(t, app, contract.NewQuickOrderRequest(testToday))

	d.PressUp()
	assert.Equal(t, 0, quickOrderState(d).cursor)

	d.Press("down", "down", "down", "down")
	assert.Equal(t, len(app.Catalog.Products())-1, quickOrderState(d).cursor)
}

func TestQuickOrderModel_PlaceWritesEveryProduct(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app, domain.ScheduleLine{ProductID: "buffalo", LitersMorning: 2})
	d := newQuickOrderDriver(t, app, contract.NewQuickOrderRequest(testToday))

	d.Press("+", "+", "tab", "+", "e")
	d.PressEnter()

	require.True(t, d.Quitting)
	m := quickOrderState(d)
	require.NotNil(t, m.placed)
	assert.Equal(t, 1.5, m.placed.TotalLiters)

	overrides, err := app.Overrides.ForDate(context.Background(), testToday)
	require.NoError(t, err)
	require.Len(t, overrides, len(app.Catalog.Products()))
	assert.Equal(t, domain.AdjustOverride(testToday, "cow", 1, 0.5), stripUpdatedAt(overrides["cow"]))
	// Untouched products are ordered as none for the day.
	assert.Equal(t, domain.AdjustOverride(testToday, "buffalo", 0, 0), stripUpdatedAt(overrides["buffalo"]))

	view, err := app.Days.Resolve(context.Background(), testToday)
	require.NoError(t, err)
	assert.Equal(t, 1.5, view.TotalLiters())
}

func TestQuickOrderModel_NoShiftShowsErrorAndKeepsRunning(t *testing.T) {
	app := testApp(t)
	d := newQuickOrderDriver(t, app, contract.NewQuickOrderRequest(testToday))

	d.Press("m")
	assert.Contains(t, d.PlainView(), "Select morning or evening")

	d.PressEnter()
	assert.False(t, d.Quitting)
	m := quickOrderState(d)
	assert.Nil(t, m.placed)
	assert.Contains(t, d.PlainView(), "Error:")

	overrides, err := app.Overrides.ForDate(context.Background(), testToday)
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestQuickOrderModel_EscQuitsWithoutWriting(t *testing.T) {
	app := testApp(t)
	d := newQuickOrderDriver(t, app, contract.NewQuickOrderRequest(testToday))

	d.Press("+")
	d.PressEsc()

	assert.True(t, d.Quitting)
	assert.Nil(t, quickOrderState(d).placed)
	overrides, err := app.Overrides.ForDate(context.Background(), testToday)
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestQuickOrderModel_PrefillsFromRequest(t *testing.T) {
	app := testApp(t)
	req := contract.QuickOrderRequest{
		Date:    testToday.AddDays(1),
		Evening: true,
		Lines:   []contract.QuickOrderLine{{ProductID: "a2", LitersEvening: 1}},
	}
	d := newQuickOrderDriver(t, app, req)

	m := quickOrderState(d)
	assert.Equal(t, domain.ShiftEvening, m.shift)
	assert.Contains(t, d.PlainView(), "QUICK ORDER · TOMORROW")
	assert.Contains(t, d.PlainView(), "1.0 L • ₹90.00")
}
