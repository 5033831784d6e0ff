package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/repository"
	"github.com/alexanderramin/milkround/internal/scheduler"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultPaymentMethod = "cash"

type ledgerService struct {
	payments  repository.PaymentRepo
	schedules repository.ScheduleRepo
	overrides repository.OverrideRepo
	customers repository.CustomerRepo
	catalog   *catalog.Catalog
	now       func() time.Time
	observer  UseCaseObserver
}

func NewLedgerService(
	payments repository.PaymentRepo,
	schedules repository.ScheduleRepo,
	overrides repository.OverrideRepo,
	customers repository.CustomerRepo,
	cat *catalog.Catalog,
	observers ...UseCaseObserver,
) LedgerService {
	return &ledgerService{
		payments:  payments,
		schedules: schedules,
		overrides: overrides,
		customers: customers,
		catalog:   cat,
		now:       time.Now,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// RecordPayment stores p, filling in ID, date, method and creation time
// when they are unset.
func (s *ledgerService) RecordPayment(ctx context.Context, p *domain.Payment) (err error) {
	uc := startUseCase(s.observer, "record-payment")
	uc.set("amount", p.Amount)
	defer func() { uc.done(ctx, err) }()

	if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) || p.Amount <= 0 {
		return fmt.Errorf("%v: %w", p.Amount, ErrInvalidAmount)
	}
	p.Amount = roundMoney(decimal.NewFromFloat(p.Amount)).InexactFloat64()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.PaidOn.IsZero() {
		p.PaidOn = domain.DateOf(s.now())
	}
	p.Method = strings.TrimSpace(p.Method)
	if p.Method == "" {
		p.Method = defaultPaymentMethod
	}
	p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	uc.onDate(p.PaidOn)

	return s.payments.Create(ctx, p)
}

func (s *ledgerService) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	return s.payments.List(ctx)
}

func (s *ledgerService) DeletePayment(ctx context.Context, id string) (err error) {
	uc := startUseCase(s.observer, "delete-payment")
	uc.set("payment", id)
	defer func() { uc.done(ctx, err) }()

	return s.payments.Delete(ctx, id)
}

// Statement prices every resolved day in the range and sets payments against
// it month by month. Months with no deliveries and no payments are left out.
func (s *ledgerService) Statement(ctx context.Context, req contract.StatementRequest) (resp *contract.StatementResponse, err error) {
	uc := startUseCase(s.observer, "statement")
	defer func() { uc.done(ctx, err) }()

	to := domain.DateOf(s.now())
	if req.To != nil {
		to = *req.To
	}
	from, err := s.statementStart(ctx, req, to)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%s after %s: %w", from, to, ErrInvalidRange)
	}
	uc.set("from", from.String())
	uc.set("to", to.String())

	sched, err := s.schedules.Get(ctx)
	if err != nil {
		return nil, err
	}
	overrides, err := s.overrides.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	months := make(map[domain.MonthKey]*contract.MonthStatement)
	month := func(k domain.MonthKey) *contract.MonthStatement {
		m, ok := months[k]
		if !ok {
			m = &contract.MonthStatement{Month: k}
			months[k] = m
		}
		return m
	}

	for _, day := range scheduler.ResolveRange(from, to, sched, overrides, s.catalog.Products()) {
		if day.Totals.Liters() == 0 {
			continue
		}
		m := month(day.Date.MonthKey())
		for _, row := range day.Rows {
			m.Liters += row.Total()
			m.Purchased = m.Purchased.Add(lineAmount(row.Total(), row.Product.PricePerLiter))
		}
	}
	for _, p := range payments {
		m := month(p.PaidOn.MonthKey())
		m.Paid = m.Paid.Add(decimal.NewFromFloat(p.Amount))
	}

	keys := make([]domain.MonthKey, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	resp = &contract.StatementResponse{From: from, To: to, Months: make([]contract.MonthStatement, 0, len(keys))}
	for _, k := range keys {
		m := months[k]
		m.Purchased = roundMoney(m.Purchased)
		m.Paid = roundMoney(m.Paid)
		m.Due = m.Purchased.Sub(m.Paid)
		resp.Months = append(resp.Months, *m)

		resp.TotalLiters += m.Liters
		resp.TotalPurchased = resp.TotalPurchased.Add(m.Purchased)
		resp.TotalPaid = resp.TotalPaid.Add(m.Paid)
	}
	resp.TotalDue = resp.TotalPurchased.Sub(resp.TotalPaid)
	uc.set("months", len(resp.Months))
	return resp, nil
}

// statementStart picks the first day of a statement: the request's From, else
// the customer's start date, else the first of the month containing to.
func (s *ledgerService) statementStart(ctx context.Context, req contract.StatementRequest, to domain.Date) (domain.Date, error) {
	if req.From != nil {
		return *req.From, nil
	}
	profile, err := s.customers.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return domain.Date{}, err
	}
	if profile != nil && profile.StartedOn != nil {
		return *profile.StartedOn, nil
	}
	return to.MonthStart(), nil
}
