package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/db"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/repository"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	catalog   *catalog.Catalog
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewScheduleService(
	schedules repository.ScheduleRepo,
	cat *catalog.Catalog,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		catalog:   cat,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Get(ctx context.Context) (domain.Schedule, error) {
	return s.schedules.Get(ctx)
}

// Save validates s and replaces the stored schedule in one transaction. The
// lines are stored as given, zero lines and line order included.
func (s *scheduleService) Save(ctx context.Context, sched domain.Schedule) (err error) {
	uc := startUseCase(s.observer, "save-schedule")
	uc.set("lines", len(sched.Lines))
	defer func() { uc.done(ctx, err) }()

	checked, err := s.validate(sched)
	if err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScheduleRepo(tx).Replace(ctx, checked)
	})
}

func (s *scheduleService) SetLine(ctx context.Context, productID string, morning, evening float64) (domain.Schedule, error) {
	line := domain.ScheduleLine{ProductID: productID, LitersMorning: morning, LitersEvening: evening}
	return s.edit(ctx, "set-schedule-line", productID, func(cur domain.Schedule) domain.Schedule {
		return cur.WithLine(line)
	})
}

// Step adds delta liters to one shift of productID, clamping at zero.
func (s *scheduleService) Step(ctx context.Context, productID string, shift domain.Shift, delta float64) (domain.Schedule, error) {
	return s.edit(ctx, "step-schedule-line", productID, func(cur domain.Schedule) domain.Schedule {
		return cur.Step(productID, shift, delta)
	})
}

// edit runs a read-modify-write of the schedule inside one transaction.
func (s *scheduleService) edit(ctx context.Context, name, productID string, change func(domain.Schedule) domain.Schedule) (result domain.Schedule, err error) {
	uc := startUseCase(s.observer, name).forProduct(productID)
	defer func() { uc.done(ctx, err) }()

	if _, err = requireProduct(s.catalog, productID); err != nil {
		return domain.Schedule{}, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		cur, err := txSchedules.Get(ctx)
		if err != nil {
			return err
		}
		next, err := s.validate(change(cur))
		if err != nil {
			return err
		}
		if err := txSchedules.Replace(ctx, next); err != nil {
			return err
		}
		result = next
		return nil
	})
	if err != nil {
		return domain.Schedule{}, err
	}
	return result, nil
}

func (s *scheduleService) validate(sched domain.Schedule) (domain.Schedule, error) {
	seen := make(map[string]bool, len(sched.Lines))
	lines := make([]domain.ScheduleLine, 0, len(sched.Lines))
	for _, l := range sched.Lines {
		if _, err := requireProduct(s.catalog, l.ProductID); err != nil {
			return domain.Schedule{}, err
		}
		if seen[l.ProductID] {
			return domain.Schedule{}, fmt.Errorf("%q: %w", l.ProductID, ErrDuplicateLine)
		}
		seen[l.ProductID] = true
		if err := validateLiters(l.ProductID, l.LitersMorning, l.LitersEvening); err != nil {
			return domain.Schedule{}, err
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return domain.Schedule{}, nil
	}
	return domain.Schedule{Lines: lines}, nil
}
