package project

import (
	"context"

	"glassworks/internal/domain"
	"glassworks/internal/modules/quote"
	"glassworks/internal/pricing"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project, statusName string) error
	SaveWithSnapshot(ctx context.Context, p *domain.Project) error
	SetStatus(ctx context.Context, companyID, projectID int64, status *domain.Status) error
	GetByID(ctx context.Context, companyID, id int64) (*domain.Project, error)
	List(ctx context.Context, companyID int64, statusID *int64) ([]domain.Project, error)
	PriceHistory(ctx context.Context, projectID int64) ([]domain.PriceSnapshot, error)
	StatusHistory(ctx context.Context, projectID int64) ([]domain.StatusChange, error)
}

type StatusRepository interface {
	GetByID(ctx context.Context, companyID, id int64) (*domain.Status, error)
	GetDefault(ctx context.Context, companyID int64) (*domain.Status, error)
}

// PriceComputer recomputes a project's price on save; implemented by the
// quote module service.
type PriceComputer interface {
	ComputePrice(ctx context.Context, companyID int64, req quote.QuoteRequest) (*pricing.Breakdown, error)
}
