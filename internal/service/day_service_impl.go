package service

import (
	"context"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/repository"
	"github.com/alexanderramin/milkround/internal/scheduler"
)

type dayService struct {
	schedules repository.ScheduleRepo
	overrides repository.OverrideRepo
	catalog   *catalog.Catalog
	observer  UseCaseObserver
}

func NewDayService(
	schedules repository.ScheduleRepo,
	overrides repository.OverrideRepo,
	cat *catalog.Catalog,
	observers ...UseCaseObserver,
) DayService {
	return &dayService{
		schedules: schedules,
		overrides: overrides,
		catalog:   cat,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *dayService) Resolve(ctx context.Context, date domain.Date) (view *contract.DayView, err error) {
	uc := startUseCase(s.observer, "resolve-day").onDate(date)
	defer func() { uc.done(ctx, err) }()

	if date.IsZero() {
		return nil, ErrMissingDate
	}
	sched, err := s.schedules.Get(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.overrides.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	uc.set("overrides", len(list))

	rows := scheduler.ResolveDay(date, sched, overridesByProduct(list), s.catalog.Products())
	return buildDayView(date, rows), nil
}

// History resolves the req.Days days before req.Date, newest first. Past days
// are resolved against the current schedule.
func (s *dayService) History(ctx context.Context, req contract.HistoryRequest) (resp *contract.HistoryResponse, err error) {
	days := req.Days
	if days <= 0 {
		days = 7
	}
	uc := startUseCase(s.observer, "history").onDate(req.Date)
	uc.set("days", days)
	defer func() { uc.done(ctx, err) }()

	if req.Date.IsZero() {
		return nil, ErrMissingDate
	}
	from, to := req.Date.AddDays(-days), req.Date.AddDays(-1)

	sched, err := s.schedules.Get(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.overrides.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resolved := scheduler.ResolveRange(from, to, sched, list, s.catalog.Products())
	resp = &contract.HistoryResponse{Days: make([]contract.HistoryDay, 0, len(resolved))}
	for i := len(resolved) - 1; i >= 0; i-- {
		d := resolved[i]
		resp.Days = append(resp.Days, contract.HistoryDay{
			Date:   d.Date,
			Liters: d.Totals.Liters(),
			Amount: d.Totals.Amount,
		})
	}
	return resp, nil
}

func buildDayView(date domain.Date, rows []domain.EffectiveDayRow) *contract.DayView {
	totals := scheduler.Totals(rows)
	view := &contract.DayView{
		Date:          date,
		Rows:          rows,
		LitersMorning: totals.LitersMorning,
		LitersEvening: totals.LitersEvening,
		Amount:        totals.Amount,
	}
	for _, r := range rows {
		if r.Source != domain.SourceSchedule {
			view.Overridden = true
			break
		}
	}
	return view
}
