package repository

import (
	"context"

	"gorm.io/gorm"

	"glassworks/internal/domain"
	"glassworks/internal/pricing"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Snapshot loads every price list of one company into a read-only snapshot
// for the pricing engine. Catalogs are tens to low hundreds of rows, so a
// full read per computation is fine.
func (r *CatalogRepository) Snapshot(ctx context.Context, companyID int64) (*pricing.CatalogSnapshot, error) {
	snap := &pricing.CatalogSnapshot{}

	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).Order("id").
		Find(&snap.Glass).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).Order("id").
		Find(&snap.Hardware).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).Order("id").
		Find(&snap.Services).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).Order("id").
		Find(&snap.BaseCosts).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

/* ---------- GLASS ---------- */

func (r *CatalogRepository) ListGlass(ctx context.Context, companyID int64) ([]domain.GlassPrice, error) {
	var out []domain.GlassPrice
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateGlass(ctx context.Context, g *domain.GlassPrice) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *CatalogRepository) UpdateGlass(ctx context.Context, g *domain.GlassPrice) error {
	return r.db.WithContext(ctx).Model(&domain.GlassPrice{}).
		Where("id = ? AND company_id = ?", g.ID, g.CompanyID).
		Updates(map[string]any{
			"color":         g.Color,
			"thickness":     g.Thickness,
			"price_per_sqm": g.PricePerSqm,
		}).Error
}

func (r *CatalogRepository) DeleteGlass(ctx context.Context, companyID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&domain.GlassPrice{}).Error
}

/* ---------- HARDWARE ---------- */

func (r *CatalogRepository) ListHardware(ctx context.Context, companyID int64) ([]domain.HardwareItem, error) {
	var out []domain.HardwareItem
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("section, id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateHardware(ctx context.Context, h *domain.HardwareItem) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *CatalogRepository) UpdateHardware(ctx context.Context, h *domain.HardwareItem) error {
	return r.db.WithContext(ctx).Model(&domain.HardwareItem{}).
		Where("id = ? AND company_id = ?", h.ID, h.CompanyID).
		Updates(map[string]any{
			"name":       h.Name,
			"section":    h.Section,
			"unit_price": h.UnitPrice,
		}).Error
}

func (r *CatalogRepository) DeleteHardware(ctx context.Context, companyID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&domain.HardwareItem{}).Error
}

/* ---------- SERVICES ---------- */

func (r *CatalogRepository) ListServices(ctx context.Context, companyID int64) ([]domain.ServiceItem, error) {
	var out []domain.ServiceItem
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *domain.ServiceItem) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogRepository) UpdateService(ctx context.Context, s *domain.ServiceItem) error {
	return r.db.WithContext(ctx).Model(&domain.ServiceItem{}).
		Where("id = ? AND company_id = ?", s.ID, s.CompanyID).
		Updates(map[string]any{"name": s.Name, "price": s.Price}).Error
}

func (r *CatalogRepository) DeleteService(ctx context.Context, companyID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&domain.ServiceItem{}).Error
}

/* ---------- BASE COSTS ---------- */

func (r *CatalogRepository) ListBaseCosts(ctx context.Context, companyID int64) ([]domain.BaseCost, error) {
	var out []domain.BaseCost
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateBaseCost(ctx context.Context, b *domain.BaseCost) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *CatalogRepository) UpdateBaseCost(ctx context.Context, b *domain.BaseCost) error {
	return r.db.WithContext(ctx).Model(&domain.BaseCost{}).
		Where("id = ? AND company_id = ?", b.ID, b.CompanyID).
		Updates(map[string]any{"name": b.Name, "value": b.Value}).Error
}

func (r *CatalogRepository) DeleteBaseCost(ctx context.Context, companyID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).
		Delete(&domain.BaseCost{}).Error
}
