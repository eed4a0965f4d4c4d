package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glassworks/internal/domain"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) List(ctx context.Context, companyID int64) ([]domain.Status, error) {
	var out []domain.Status
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("sort_order, id").
		Find(&out).Error
	return out, err
}

func (r *StatusRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.Status, error) {
	var s domain.Status
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetDefault returns the column new projects land in. Falls back to the first
// column by order when no default flag is set.
func (r *StatusRepository) GetDefault(ctx context.Context, companyID int64) (*domain.Status, error) {
	var s domain.Status
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_default = ?", companyID, true).
		Order("sort_order, id").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = r.db.WithContext(ctx).
			Where("company_id = ?", companyID).
			Order("sort_order, id").
			First(&s).Error
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatusRepository) Create(ctx context.Context, s *domain.Status) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StatusRepository) Update(ctx context.Context, s *domain.Status) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", s.ID, s.CompanyID).
		Save(s).Error
}

func (r *StatusRepository) Delete(ctx context.Context, companyID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&domain.Status{}).Error
}

// CountProjects reports how many projects currently sit in a status; columns
// with projects cannot be deleted.
func (r *StatusRepository) CountProjects(ctx context.Context, companyID, statusID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Project{}).
		Where("company_id = ? AND status_id = ?", companyID, statusID).
		Count(&cnt).Error
	return cnt, err
}

// Reorder rewrites sort_order to match the given id sequence, in one
// transaction so a half-applied drag never persists.
func (r *StatusRepository) Reorder(ctx context.Context, companyID int64, ids []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			res := tx.Model(&domain.Status{}).
				Where("id = ? AND company_id = ?", id, companyID).
				Update("sort_order", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
