package company

import (
	"context"

	"glassworks/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]domain.User, error)
}

type SettingsRepository interface {
	Upsert(ctx context.Context, s *domain.Settings) error
}

type StatusRepository interface {
	Create(ctx context.Context, s *domain.Status) error
}

type TemplateRepository interface {
	Create(ctx context.Context, t *domain.Template) error
}
