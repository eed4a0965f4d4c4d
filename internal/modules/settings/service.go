package settings

import (
	"context"

	"glassworks/internal/domain"
)

type Service struct {
	repo SettingsRepository
}

func NewService(repo SettingsRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, companyID int64) (*domain.Settings, error) {
	cfg, err := s.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrNotConfigured
	}
	return cfg, nil
}

// Update validates and upserts the tenant configuration. A conversion rate is
// required before the matching display flag can be turned on.
func (s *Service) Update(ctx context.Context, companyID int64, req UpdateSettingsRequest) (*domain.Settings, error) {
	if req.USDRate < 0 || req.RRRate < 0 || req.CustomColorSurcharge < 0 {
		return nil, ErrValidation
	}
	if req.ShowUSD && req.USDRate <= 0 {
		return nil, ErrValidation
	}
	if req.ShowRR && req.RRRate <= 0 {
		return nil, ErrValidation
	}
	if req.BaseCostMode == domain.BaseCostPercentage && req.BaseCostPercentage < 0 {
		return nil, ErrValidation
	}

	cfg := req.toDomain(companyID)
	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return s.Get(ctx, companyID)
}
