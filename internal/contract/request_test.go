package contract

import (
	"testing"

	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/stretchr/testify/assert"
)

// --- HistoryRequest constructor defaults ---

func TestNewHistoryRequest_SetsDefaults(t *testing.T) {
	date := domain.MustParseDate("2024-03-15")
	req := NewHistoryRequest(date)

	assert.Equal(t, date, req.Date)
	assert.Equal(t, 7, req.Days)
}

// --- QuickOrderRequest constructor defaults ---

func TestNewQuickOrderRequest_MorningOnly(t *testing.T) {
	req := NewQuickOrderRequest(domain.MustParseDate("2024-03-15"))

	assert.True(t, req.Morning)
	assert.False(t, req.Evening)
	assert.Empty(t, req.Lines)
}

func TestHistoryDay_NoOrder(t *testing.T) {
	assert.True(t, HistoryDay{}.NoOrder())
	assert.False(t, HistoryDay{Liters: 0.5}.NoOrder())
}

func TestDayView_TotalLiters(t *testing.T) {
	v := DayView{LitersMorning: 1.5, LitersEvening: 2}
	assert.Equal(t, 3.5, v.TotalLiters())
}
