package quote

import (
	"context"

	"glassworks/internal/domain"
	"glassworks/internal/pricing"
)

type SettingsRepository interface {
	GetByCompany(ctx context.Context, companyID int64) (*domain.Settings, error)
}

// CatalogSource provides the read-only per-tenant price list snapshot one
// computation works against.
type CatalogSource interface {
	Snapshot(ctx context.Context, companyID int64) (*pricing.CatalogSnapshot, error)
}

// TemplateResolver expands a configuration selector into a template
// definition; implemented by the template module service.
type TemplateResolver interface {
	Resolve(ctx context.Context, companyID int64, selector string) (*domain.Template, error)
}
