package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glassworks/internal/domain"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetByCompany returns nil without error when the tenant has no settings row;
// callers decide whether that is ConfigurationMissing.
func (r *SettingsRepository) GetByCompany(ctx context.Context, companyID int64) (*domain.Settings, error) {
	var s domain.Settings
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"currency", "usd_rate", "rr_rate", "show_usd", "show_rr",
			"base_cost_mode", "base_cost_percentage", "custom_color_surcharge",
			"updated_at",
		}),
	}).Create(s).Error
}
