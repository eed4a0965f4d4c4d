package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glassworks/internal/domain"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.Template, error) {
	var t domain.Template
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetSystemByType returns the tenant's system template for a built-in
// configuration type, or nil when the tenant was never migrated to templates.
func (r *TemplateRepository) GetSystemByType(ctx context.Context, companyID int64, t domain.ConfigurationType) (*domain.Template, error) {
	var tpl domain.Template
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND type = ? AND is_system = ?", companyID, t, true).
		Order("id").
		First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *TemplateRepository) List(ctx context.Context, companyID int64) ([]domain.Template, error) {
	var out []domain.Template
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("id").Find(&out).Error
	return out, err
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TemplateRepository) Update(ctx context.Context, t *domain.Template) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", t.ID, t.CompanyID).
		Save(t).Error
}

// Delete removes a user template. System templates are mutated in place and
// never deleted, so the query excludes them.
func (r *TemplateRepository) Delete(ctx context.Context, companyID, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ? AND is_system = ?", id, companyID, false).
		Delete(&domain.Template{})
	return tx.RowsAffected, tx.Error
}
