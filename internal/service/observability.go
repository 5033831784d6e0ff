package service

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/alexanderramin/milkround/internal/domain"
)

// UseCaseEvent describes one finished service call. Date and ProductID are
// zero when the use case is not scoped to a delivery day or a product.
type UseCaseEvent struct {
	Name      string
	Date      domain.Date
	ProductID string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	Fields    map[string]any
}

// Success reports whether the call returned without error.
func (e UseCaseEvent) Success() bool {
	return e.Err == nil
}

// UseCaseObserver receives one event per service call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// useCase accumulates an event while a service call runs. Services start one
// on entry and defer done with their named error result.
type useCase struct {
	obs   UseCaseObserver
	event UseCaseEvent
}

func startUseCase(obs UseCaseObserver, name string) *useCase {
	return &useCase{
		obs: obs,
		event: UseCaseEvent{
			Name:      name,
			StartedAt: time.Now().UTC(),
			Fields:    map[string]any{},
		},
	}
}

func (u *useCase) onDate(d domain.Date) *useCase {
	u.event.Date = d
	return u
}

func (u *useCase) forProduct(id string) *useCase {
	u.event.ProductID = id
	return u
}

func (u *useCase) set(key string, value any) {
	u.event.Fields[key] = value
}

func (u *useCase) done(ctx context.Context, err error) {
	u.event.Duration = time.Since(u.event.StartedAt)
	u.event.Err = err
	u.obs.ObserveUseCase(ctx, u.event)
}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs one "use_case" line per service call to w. Failed
// calls log at error level.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{slog.String("op", event.Name)}
	if !event.Date.IsZero() {
		attrs = append(attrs, slog.String("date", event.Date.String()))
	}
	if event.ProductID != "" {
		attrs = append(attrs, slog.String("product", event.ProductID))
	}
	attrs = append(attrs, slog.Int64("duration_ms", event.Duration.Milliseconds()))
	for _, k := range slices.Sorted(maps.Keys(event.Fields)) {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "use_case", attrs...)
}
