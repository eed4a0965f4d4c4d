package domain

import "time"

// GlassPrice is a per-tenant price list entry for glass, keyed by color and
// thickness. Thickness is free text ("8", "8 мм"); comparison is digit-only.
type GlassPrice struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id" gorm:"index"`
	Color       string    `json:"color"`
	Thickness   *string   `json:"thickness,omitempty"`
	PricePerSqm float64   `json:"price_per_sqm"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HardwareItem is a per-tenant hardware price list entry. A nil UnitPrice means
// no price has been configured yet; it is not the same as a zero price.
type HardwareItem struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id" gorm:"uniqueIndex:idx_hardware_company_name_section"`
	Name      string    `json:"name" gorm:"uniqueIndex:idx_hardware_company_name_section"`
	Section   string    `json:"section" gorm:"uniqueIndex:idx_hardware_company_name_section"`
	UnitPrice *float64  `json:"unit_price,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceItem struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id" gorm:"index"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BaseCost is a named flat value: either a per-configuration-type base fee or a
// named surcharge (доставка, монтаж, демонтаж) resolved by name matching.
type BaseCost struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id" gorm:"uniqueIndex:idx_base_cost_company_name"`
	Name      string    `json:"name" gorm:"uniqueIndex:idx_base_cost_company_name"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
