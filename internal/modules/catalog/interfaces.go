package catalog

import (
	"context"

	"glassworks/internal/domain"
)

type CatalogRepository interface {
	ListGlass(ctx context.Context, companyID int64) ([]domain.GlassPrice, error)
	CreateGlass(ctx context.Context, g *domain.GlassPrice) error
	UpdateGlass(ctx context.Context, g *domain.GlassPrice) error
	DeleteGlass(ctx context.Context, companyID, id int64) error

	ListHardware(ctx context.Context, companyID int64) ([]domain.HardwareItem, error)
	CreateHardware(ctx context.Context, h *domain.HardwareItem) error
	UpdateHardware(ctx context.Context, h *domain.HardwareItem) error
	DeleteHardware(ctx context.Context, companyID, id int64) error

	ListServices(ctx context.Context, companyID int64) ([]domain.ServiceItem, error)
	CreateService(ctx context.Context, s *domain.ServiceItem) error
	UpdateService(ctx context.Context, s *domain.ServiceItem) error
	DeleteService(ctx context.Context, companyID, id int64) error

	ListBaseCosts(ctx context.Context, companyID int64) ([]domain.BaseCost, error)
	CreateBaseCost(ctx context.Context, b *domain.BaseCost) error
	UpdateBaseCost(ctx context.Context, b *domain.BaseCost) error
	DeleteBaseCost(ctx context.Context, companyID, id int64) error
}
