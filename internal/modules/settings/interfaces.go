package settings

import (
	"context"

	"glassworks/internal/domain"
)

type SettingsRepository interface {
	GetByCompany(ctx context.Context, companyID int64) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
