package repository

import (
	"context"

	"gorm.io/gorm"

	"glassworks/internal/domain"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var out []domain.Company
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}
