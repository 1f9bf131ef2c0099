package districts

import (
	"context"
	"fmt"
	"strings"

	"github.com/abs-steel/abs-inventory/internal/masterdata/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]District, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (District, error) {
	if id <= 0 {
		return District{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, district District) (District, error) {
	if district.ActiveStatus == "" {
		district.ActiveStatus = shared.StatusActive
	}
	if err := s.validate(district); err != nil {
		return District{}, err
	}
	return s.repo.Create(ctx, district)
}

func (s *Service) Update(ctx context.Context, id int64, district District) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	if district.ActiveStatus == "" {
		district.ActiveStatus = shared.StatusActive
	}
	if err := s.validate(district); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, district)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) validate(d District) error {
	if strings.TrimSpace(d.DistrictName) == "" {
		return fmt.Errorf("%w: district_name", shared.ErrRequiredField)
	}
	if strings.TrimSpace(d.DistrictCode) == "" {
		return fmt.Errorf("%w: district_code", shared.ErrRequiredField)
	}
	switch d.ActiveStatus {
	case shared.StatusActive, shared.StatusInactive:
	default:
		return fmt.Errorf("%w: active_status must be Active or Inactive", shared.ErrValidation)
	}
	return nil
}
