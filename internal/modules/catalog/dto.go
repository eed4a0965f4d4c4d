package catalog

import "glassworks/internal/domain"

type GlassPriceRequest struct {
	Color       string   `json:"color" binding:"required"`
	Thickness   *string  `json:"thickness"`
	PricePerSqm *float64 `json:"price_per_sqm" binding:"required"`
}

func (r GlassPriceRequest) toDomain(companyID, id int64) *domain.GlassPrice {
	return &domain.GlassPrice{
		ID:          id,
		CompanyID:   companyID,
		Color:       r.Color,
		Thickness:   r.Thickness,
		PricePerSqm: *r.PricePerSqm,
	}
}

type HardwareItemRequest struct {
	Name      string   `json:"name" binding:"required"`
	Section   string   `json:"section"`
	UnitPrice *float64 `json:"unit_price"`
}

func (r HardwareItemRequest) toDomain(companyID, id int64) *domain.HardwareItem {
	return &domain.HardwareItem{
		ID:        id,
		CompanyID: companyID,
		Name:      r.Name,
		Section:   r.Section,
		UnitPrice: r.UnitPrice,
	}
}

type ServiceItemRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

func (r ServiceItemRequest) toDomain(companyID, id int64) *domain.ServiceItem {
	return &domain.ServiceItem{
		ID:        id,
		CompanyID: companyID,
		Name:      r.Name,
		Price:     *r.Price,
	}
}

type BaseCostRequest struct {
	Name  string   `json:"name" binding:"required"`
	Value *float64 `json:"value" binding:"required"`
}

func (r BaseCostRequest) toDomain(companyID, id int64) *domain.BaseCost {
	return &domain.BaseCost{
		ID:        id,
		CompanyID: companyID,
		Name:      r.Name,
		Value:     *r.Value,
	}
}
