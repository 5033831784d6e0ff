package testutil

import (
	"time"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/google/uuid"
)

// Day is the fixed reference date most tests resolve against.
var Day = domain.NewDate(2024, time.March, 15)

// NewTestCatalog returns the three-product catalog used across service and
// CLI tests: cow 60, buffalo 70, a2 90 per liter.
func NewTestCatalog() *catalog.Catalog {
	return catalog.Default()
}

// Product options
type ProductOption func(*domain.Product)

func WithPrice(p float64) ProductOption {
	return func(pr *domain.Product) {
		pr.PricePerLiter = p
	}
}

func WithProductName(n string) ProductOption {
	return func(pr *domain.Product) {
		pr.Name = n
	}
}

func NewTestProduct(id string, opts ...ProductOption) domain.Product {
	p := domain.Product{ID: id, Name: id, PricePerLiter: 50}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Line is shorthand for a schedule line.
func Line(productID string, morning, evening float64) domain.ScheduleLine {
	return domain.ScheduleLine{ProductID: productID, LitersMorning: morning, LitersEvening: evening}
}

func NewTestSchedule(lines ...domain.ScheduleLine) domain.Schedule {
	return domain.Schedule{Lines: lines}
}

// Override options
type OverrideOption func(*domain.Override)

func WithSkip() OverrideOption {
	return func(o *domain.Override) {
		o.Kind = domain.OverrideSkip
		o.LitersMorning, o.LitersEvening = 0, 0
	}
}

func WithLiters(morning, evening float64) OverrideOption {
	return func(o *domain.Override) {
		o.Kind = domain.OverrideAdjust
		o.LitersMorning, o.LitersEvening = morning, evening
	}
}

// NewTestOverride builds an adjust override of 1 L morning, 0 L evening
// unless options say otherwise.
func NewTestOverride(date domain.Date, productID string, opts ...OverrideOption) domain.Override {
	o := domain.AdjustOverride(date, productID, 1, 0)
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Payment options
type PaymentOption func(*domain.Payment)

func WithMethod(m string) PaymentOption {
	return func(p *domain.Payment) {
		p.Method = m
	}
}

func WithNote(n string) PaymentOption {
	return func(p *domain.Payment) {
		p.Note = n
	}
}

func NewTestPayment(paidOn domain.Date, amount float64, opts ...PaymentOption) *domain.Payment {
	p := &domain.Payment{
		ID:        uuid.New().String(),
		PaidOn:    paidOn,
		Amount:    amount,
		Method:    "cash",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
