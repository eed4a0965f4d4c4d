package domain

import "time"

type Currency string

const (
	CurrencyGEL Currency = "GEL"
	CurrencyUSD Currency = "USD"
	CurrencyRR  Currency = "RR"
)

type BaseCostMode string

const (
	BaseCostFixed      BaseCostMode = "fixed"
	BaseCostPercentage BaseCostMode = "percentage"
)

// Settings holds per-tenant pricing configuration. Pricing refuses to run
// without it: a guessed currency or base-cost mode corrupts totals.
type Settings struct {
	ID                   int64        `json:"id"`
	CompanyID            int64        `json:"company_id" gorm:"uniqueIndex"`
	Currency             Currency     `json:"currency"`
	USDRate              float64      `json:"usd_rate"`
	RRRate               float64      `json:"rr_rate"`
	ShowUSD              bool         `json:"show_usd"`
	ShowRR               bool         `json:"show_rr"`
	BaseCostMode         BaseCostMode `json:"base_cost_mode"`
	BaseCostPercentage   float64      `json:"base_cost_percentage"`
	CustomColorSurcharge float64      `json:"custom_color_surcharge"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}
