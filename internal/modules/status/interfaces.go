package status

import (
	"context"

	"glassworks/internal/domain"
)

type StatusRepository interface {
	List(ctx context.Context, companyID int64) ([]domain.Status, error)
	GetByID(ctx context.Context, companyID, id int64) (*domain.Status, error)
	Create(ctx context.Context, s *domain.Status) error
	Update(ctx context.Context, s *domain.Status) error
	Delete(ctx context.Context, companyID, id int64) error
	CountProjects(ctx context.Context, companyID, statusID int64) (int64, error)
	Reorder(ctx context.Context, companyID int64, ids []int64) error
}
