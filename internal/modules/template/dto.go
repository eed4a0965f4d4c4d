package template

import "glassworks/internal/domain"

type SaveTemplateRequest struct {
	Name                  string                   `json:"name" binding:"required"`
	Type                  domain.ConfigurationType `json:"type"`
	GlassConfig           []domain.GlassPaneConfig `json:"glass_config"`
	SizeAdjustments       domain.SizeAdjustments   `json:"size_adjustments"`
	DefaultHardware       []string                 `json:"default_hardware"`
	DefaultServices       []string                 `json:"default_services"`
	CustomColorOption     bool                     `json:"custom_color_option"`
	ExactHeightOption     bool                     `json:"exact_height_option"`
	DefaultGlassColor     string                   `json:"default_glass_color"`
	DefaultGlassThickness string                   `json:"default_glass_thickness"`
}

func (r SaveTemplateRequest) toDomain(companyID int64) *domain.Template {
	return &domain.Template{
		CompanyID:             companyID,
		Name:                  r.Name,
		Type:                  r.Type,
		GlassConfig:           r.GlassConfig,
		SizeAdjustments:       r.SizeAdjustments,
		DefaultHardware:       r.DefaultHardware,
		DefaultServices:       r.DefaultServices,
		CustomColorOption:     r.CustomColorOption,
		ExactHeightOption:     r.ExactHeightOption,
		DefaultGlassColor:     r.DefaultGlassColor,
		DefaultGlassThickness: r.DefaultGlassThickness,
	}
}
