package ledgers

import (
	"context"

	"github.com/abs-steel/abs-inventory/internal/masterdata/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Ledger, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (Ledger, error) {
	if id <= 0 {
		return Ledger{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, ledger Ledger) (Ledger, error) {
	applyDefaults(&ledger)
	if err := s.validate(ledger); err != nil {
		return Ledger{}, err
	}
	return s.repo.Create(ctx, ledger)
}

func (s *Service) Update(ctx context.Context, id int64, ledger Ledger) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	applyDefaults(&ledger)
	if err := s.validate(ledger); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, ledger)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func applyDefaults(l *Ledger) {
	if l.PartyType == "" {
		l.PartyType = PartyTypeCustomer
	}
	if l.ActiveStatus == "" {
		l.ActiveStatus = shared.StatusActive
	}
}
