package template

import (
	"context"

	"glassworks/internal/domain"
)

// TemplateRepository defines the storage interface the resolver needs.
type TemplateRepository interface {
	GetByID(ctx context.Context, companyID, id int64) (*domain.Template, error)
	GetSystemByType(ctx context.Context, companyID int64, t domain.ConfigurationType) (*domain.Template, error)
	List(ctx context.Context, companyID int64) ([]domain.Template, error)
	Create(ctx context.Context, t *domain.Template) error
	Update(ctx context.Context, t *domain.Template) error
	Delete(ctx context.Context, companyID, id int64) (int64, error)
}
