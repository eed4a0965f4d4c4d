package settings

import "glassworks/internal/domain"

type UpdateSettingsRequest struct {
	Currency             domain.Currency     `json:"currency" binding:"required,oneof=GEL USD RR"`
	USDRate              float64             `json:"usd_rate"`
	RRRate               float64             `json:"rr_rate"`
	ShowUSD              bool                `json:"show_usd"`
	ShowRR               bool                `json:"show_rr"`
	BaseCostMode         domain.BaseCostMode `json:"base_cost_mode" binding:"required,oneof=fixed percentage"`
	BaseCostPercentage   float64             `json:"base_cost_percentage"`
	CustomColorSurcharge float64             `json:"custom_color_surcharge"`
}

func (r UpdateSettingsRequest) toDomain(companyID int64) *domain.Settings {
	return &domain.Settings{
		CompanyID:            companyID,
		Currency:             r.Currency,
		USDRate:              r.USDRate,
		RRRate:               r.RRRate,
		ShowUSD:              r.ShowUSD,
		ShowRR:               r.ShowRR,
		BaseCostMode:         r.BaseCostMode,
		BaseCostPercentage:   r.BaseCostPercentage,
		CustomColorSurcharge: r.CustomColorSurcharge,
	}
}
