package project

import (
	"glassworks/internal/domain"
	"glassworks/internal/modules/quote"
)

type HardwareItemRequest struct {
	HardwareID *int64 `json:"hardware_id"`
	Name       string `json:"name" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type ServiceItemRequest struct {
	ServiceID *int64   `json:"service_id"`
	Name      string   `json:"name" binding:"required"`
	Price     *float64 `json:"price"`
}

// SaveProjectRequest covers both create and update. ManualPrice, when set,
// skips engine recomputation for this save; the override still goes through
// the price ledger.
type SaveProjectRequest struct {
	Name              string                   `json:"name" binding:"required"`
	Customer          string                   `json:"customer"`
	ConfigurationType domain.ConfigurationType `json:"configuration_type" binding:"required"`
	TemplateID        *int64                   `json:"template_id"`
	Dimensions        domain.Dimensions        `json:"dimensions"`
	GlassColor        string                   `json:"glass_color"`
	GlassThickness    string                   `json:"glass_thickness"`
	HardwareColor     string                   `json:"hardware_color"`
	Hardware          []HardwareItemRequest    `json:"hardware" binding:"dive"`
	Services          []ServiceItemRequest     `json:"services" binding:"dive"`
	Options           domain.ProjectOptions    `json:"options"`
	ManualPrice       *float64                 `json:"manual_price"`
}

type SetStatusRequest struct {
	StatusID int64 `json:"status_id" binding:"required"`
}

func (r SaveProjectRequest) toQuoteRequest() quote.QuoteRequest {
	hardware := make([]quote.HardwareSelection, 0, len(r.Hardware))
	for _, h := range r.Hardware {
		hardware = append(hardware, quote.HardwareSelection{Name: h.Name, Quantity: h.Quantity})
	}
	services := make([]quote.ServiceSelection, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, quote.ServiceSelection{Name: s.Name, Price: s.Price})
	}
	return quote.QuoteRequest{
		ConfigurationType: r.ConfigurationType,
		TemplateID:        r.TemplateID,
		Dimensions:        r.Dimensions,
		GlassColor:        r.GlassColor,
		GlassThickness:    r.GlassThickness,
		Hardware:          hardware,
		Services:          services,
		Options:           r.Options,
	}
}

func (r SaveProjectRequest) apply(p *domain.Project) {
	p.Name = r.Name
	p.Customer = r.Customer
	p.ConfigurationType = r.ConfigurationType
	p.TemplateID = r.TemplateID
	p.Dimensions = r.Dimensions
	p.GlassColor = r.GlassColor
	p.GlassThickness = r.GlassThickness
	p.HardwareColor = r.HardwareColor

	p.Hardware = make([]domain.ProjectHardware, 0, len(r.Hardware))
	for _, h := range r.Hardware {
		p.Hardware = append(p.Hardware, domain.ProjectHardware{
			HardwareID: h.HardwareID, Name: h.Name, Quantity: h.Quantity,
		})
	}
	p.Services = make([]domain.ProjectService, 0, len(r.Services))
	for _, s := range r.Services {
		p.Services = append(p.Services, domain.ProjectService{
			ServiceID: s.ServiceID, Name: s.Name, Price: s.Price,
		})
	}
	p.Options = r.Options
}
