package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/contract"
	"github.com/alexanderramin/milkround/internal/db"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/repository"
	"github.com/shopspring/decimal"
)

type overrideService struct {
	overrides repository.OverrideRepo
	catalog   *catalog.Catalog
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewOverrideService(
	overrides repository.OverrideRepo,
	cat *catalog.Catalog,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) OverrideService {
	return &overrideService{
		overrides: overrides,
		catalog:   cat,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Set records o, replacing any override for the same date and product.
func (s *overrideService) Set(ctx context.Context, o domain.Override) (err error) {
	uc := startUseCase(s.observer, "set-override").onDate(o.Date).forProduct(o.ProductID)
	uc.set("kind", string(o.Kind))
	defer func() { uc.done(ctx, err) }()

	return s.upsert(ctx, o)
}

// SetMany records every override in one transaction. Either all are stored or
// none are.
func (s *overrideService) SetMany(ctx context.Context, overrides []domain.Override) (err error) {
	uc := startUseCase(s.observer, "set-overrides")
	uc.set("overrides", len(overrides))
	defer func() { uc.done(ctx, err) }()

	return s.upsertAll(ctx, overrides)
}

func (s *overrideService) Skip(ctx context.Context, date domain.Date, productID string) (err error) {
	uc := startUseCase(s.observer, "skip").onDate(date).forProduct(productID)
	defer func() { uc.done(ctx, err) }()

	return s.upsert(ctx, domain.SkipOverride(date, productID))
}

func (s *overrideService) Adjust(ctx context.Context, date domain.Date, productID string, morning, evening float64) (err error) {
	uc := startUseCase(s.observer, "adjust").onDate(date).forProduct(productID)
	uc.set("morning", morning)
	uc.set("evening", evening)
	defer func() { uc.done(ctx, err) }()

	return s.upsert(ctx, domain.AdjustOverride(date, productID, morning, evening))
}

// Reset removes the override so the schedule applies again on date.
func (s *overrideService) Reset(ctx context.Context, date domain.Date, productID string) (err error) {
	uc := startUseCase(s.observer, "reset").onDate(date).forProduct(productID)
	defer func() { uc.done(ctx, err) }()

	if date.IsZero() {
		return ErrMissingDate
	}
	return s.overrides.Delete(ctx, date, productID)
}

func (s *overrideService) ForDate(ctx context.Context, date domain.Date) (map[string]domain.Override, error) {
	list, err := s.overrides.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return overridesByProduct(list), nil
}

func (s *overrideService) Between(ctx context.Context, from, to domain.Date) ([]domain.Override, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%s after %s: %w", from, to, ErrInvalidRange)
	}
	return s.overrides.ListBetween(ctx, from, to)
}

// QuickOrder writes one adjust override per line for req.Date. Quantities on
// an inactive shift are stored as zero. The schedule is never touched.
func (s *overrideService) QuickOrder(ctx context.Context, req contract.QuickOrderRequest) (resp *contract.QuickOrderResponse, err error) {
	uc := startUseCase(s.observer, "quick-order").onDate(req.Date)
	uc.set("lines", len(req.Lines))
	uc.set("morning", req.Morning)
	uc.set("evening", req.Evening)
	defer func() { uc.done(ctx, err) }()

	if req.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if !req.Morning && !req.Evening {
		return nil, ErrNoShiftSelected
	}

	resp = &contract.QuickOrderResponse{Date: req.Date}
	seen := make(map[string]bool, len(req.Lines))
	total := decimal.Zero
	for _, line := range req.Lines {
		if seen[line.ProductID] {
			return nil, fmt.Errorf("%q: %w", line.ProductID, ErrDuplicateLine)
		}
		seen[line.ProductID] = true

		product, err := requireProduct(s.catalog, line.ProductID)
		if err != nil {
			return nil, err
		}
		var morning, evening float64
		if req.Morning {
			morning = line.LitersMorning
		}
		if req.Evening {
			evening = line.LitersEvening
		}
		o := domain.AdjustOverride(req.Date, line.ProductID, morning, evening)
		resp.Overrides = append(resp.Overrides, o)
		resp.TotalLiters += morning + evening
		total = total.Add(lineAmount(morning+evening, product.PricePerLiter))
	}
	resp.TotalAmount = roundMoney(total).InexactFloat64()
	uc.set("total_liters", resp.TotalLiters)

	if err = s.upsertAll(ctx, resp.Overrides); err != nil {
		return nil, fmt.Errorf("placing quick order: %w", err)
	}
	return resp, nil
}

func (s *overrideService) upsert(ctx context.Context, o domain.Override) error {
	if err := s.validate(o); err != nil {
		return err
	}
	return s.overrides.Upsert(ctx, o)
}

func (s *overrideService) upsertAll(ctx context.Context, overrides []domain.Override) error {
	for _, o := range overrides {
		if err := s.validate(o); err != nil {
			return err
		}
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txOverrides := repository.NewSQLiteOverrideRepo(tx)
		for _, o := range overrides {
			if err := txOverrides.Upsert(ctx, o); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *overrideService) validate(o domain.Override) error {
	if o.Date.IsZero() {
		return ErrMissingDate
	}
	if _, err := requireProduct(s.catalog, o.ProductID); err != nil {
		return err
	}
	switch o.Kind {
	case domain.OverrideSkip:
		return nil
	case domain.OverrideAdjust:
		return validateLiters(o.ProductID, o.LitersMorning, o.LitersEvening)
	default:
		return fmt.Errorf("override kind %q: %w", o.Kind, ErrInvalidQuantity)
	}
}
