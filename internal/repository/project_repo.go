package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glassworks/internal/domain"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts the project together with its initial price snapshot and
// status history entry in one transaction. A project never exists without a
// first ledger entry.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project, statusName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		if err := tx.Create(&domain.PriceSnapshot{
			ProjectID: p.ID,
			Price:     p.CurrentPrice,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&domain.StatusChange{
			ProjectID:  p.ID,
			StatusID:   p.StatusID,
			StatusName: statusName,
		}).Error
	})
}

// SaveWithSnapshot persists a project edit and appends the price snapshot in
// the same transaction: an append failure aborts the save, so no price change
// lands without an audit entry.
func (r *ProjectRepository) SaveWithSnapshot(ctx context.Context, p *domain.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND company_id = ?", p.ID, p.CompanyID).Save(p)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&domain.PriceSnapshot{
			ProjectID: p.ID,
			Price:     p.CurrentPrice,
		}).Error
	})
}

// SetStatus is the lightweight board-move path: updates the current status and
// appends exactly one history entry, even when the status is re-assigned to
// its current value.
func (r *ProjectRepository) SetStatus(ctx context.Context, companyID, projectID int64, status *domain.Status) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Project{}).
			Where("id = ? AND company_id = ?", projectID, companyID).
			Updates(map[string]any{"status_id": status.ID, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&domain.StatusChange{
			ProjectID:  projectID,
			StatusID:   status.ID,
			StatusName: status.Name,
		}).Error
	})
}

func (r *ProjectRepository) GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error) {
	var p domain.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context, companyID int64, statusID *int64) ([]domain.Project, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if statusID != nil {
		q = q.Where("status_id = ?", *statusID)
	}
	var out []domain.Project
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

// PriceHistory returns snapshots oldest first. The ledger tables only ever
// see inserts and reads.
func (r *ProjectRepository) PriceHistory(ctx context.Context, projectID int64) ([]domain.PriceSnapshot, error) {
	var out []domain.PriceSnapshot
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *ProjectRepository) StatusHistory(ctx context.Context, projectID int64) ([]domain.StatusChange, error) {
	var out []domain.StatusChange
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id").
		Find(&out).Error
	return out, err
}
