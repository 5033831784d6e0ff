package service

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/repository"
)

type customerService struct {
	customers repository.CustomerRepo
	observer  UseCaseObserver
}

func NewCustomerService(customers repository.CustomerRepo, observers ...UseCaseObserver) CustomerService {
	return &customerService{
		customers: customers,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Get returns the customer profile, or an empty default profile when the row
// is missing.
func (s *customerService) Get(ctx context.Context) (*domain.CustomerProfile, error) {
	p, err := s.customers.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.CustomerProfile{ID: domain.DefaultProfileID}, nil
	}
	return p, err
}

func (s *customerService) Save(ctx context.Context, p *domain.CustomerProfile) (err error) {
	uc := startUseCase(s.observer, "save-profile")
	if p.StartedOn != nil {
		uc.onDate(*p.StartedOn)
	}
	defer func() { uc.done(ctx, err) }()

	p.ID = domain.DefaultProfileID
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	return s.customers.Upsert(ctx, p)
}
