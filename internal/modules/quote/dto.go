package quote

import "glassworks/internal/domain"

type HardwareSelection struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type ServiceSelection struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price"`
}

// QuoteRequest is the full pricing input for one project configuration.
type QuoteRequest struct {
	ConfigurationType domain.ConfigurationType `json:"configuration_type" binding:"required"`
	TemplateID        *int64                   `json:"template_id"`
	Dimensions        domain.Dimensions        `json:"dimensions"`
	GlassColor        string                   `json:"glass_color"`
	GlassThickness    string                   `json:"glass_thickness"`
	Hardware          []HardwareSelection      `json:"hardware" binding:"dive"`
	Services          []ServiceSelection       `json:"services" binding:"dive"`
	Options           domain.ProjectOptions    `json:"options"`
}

type DimensionsRequest struct {
	ConfigurationType domain.ConfigurationType `json:"configuration_type" binding:"required"`
	TemplateID        *int64                   `json:"template_id"`
	Dimensions        domain.Dimensions        `json:"dimensions"`
	ExactHeight       bool                     `json:"exact_height"`
}
