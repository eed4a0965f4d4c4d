package quote

import (
	"context"
	"strconv"

	"glassworks/internal/domain"
	"glassworks/internal/pricing"
)

type Service struct {
	settings  SettingsRepository
	catalogs  CatalogSource
	templates TemplateResolver
}

func NewService(settings SettingsRepository, catalogs CatalogSource, templates TemplateResolver) *Service {
	return &Service{settings: settings, catalogs: catalogs, templates: templates}
}

// resolveTemplate loads the template a request needs; only custom
// configurations require one.
func (s *Service) resolveTemplate(ctx context.Context, companyID int64, kind domain.ConfigurationType, templateID *int64) (*domain.Template, error) {
	if kind != domain.ConfigCustom {
		return nil, nil
	}
	if templateID == nil {
		return nil, ErrValidation
	}
	tpl, err := s.templates.Resolve(ctx, companyID, strconv.FormatInt(*templateID, 10))
	if err != nil {
		return nil, ErrTemplateNotFound
	}
	return tpl, nil
}

// ComputeDimensions is the preview path: raw millimetres in, per-pane areas
// and panel sizes out, no catalog involved.
func (s *Service) ComputeDimensions(ctx context.Context, companyID int64, req DimensionsRequest) (*pricing.DimensionResult, error) {
	tpl, err := s.resolveTemplate(ctx, companyID, req.ConfigurationType, req.TemplateID)
	if err != nil {
		return nil, err
	}

	res, err := pricing.ComputeDimensions(req.ConfigurationType, req.Dimensions, tpl, req.ExactHeight)
	if err != nil {
		return nil, ErrValidation
	}
	return res, nil
}

// ComputePrice builds the tenant context and runs the pricing engine. Missing
// settings are a hard error; everything else degrades inside the engine.
func (s *Service) ComputePrice(ctx context.Context, companyID int64, req QuoteRequest) (*pricing.Breakdown, error) {
	for _, h := range req.Hardware {
		if h.Quantity < 1 {
			return nil, ErrValidation
		}
	}

	settings, err := s.settings.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrConfigurationMissing
	}

	snapshot, err := s.catalogs.Snapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}

	tpl, err := s.resolveTemplate(ctx, companyID, req.ConfigurationType, req.TemplateID)
	if err != nil {
		return nil, err
	}

	dims, err := pricing.ComputeDimensions(req.ConfigurationType, req.Dimensions, tpl, req.Options.ExactHeight)
	if err != nil {
		return nil, ErrValidation
	}

	// Panes without their own color (everything except unique panes the user
	// colored individually) inherit the project-level selection.
	panes := dims.Panes
	for i := range panes {
		if panes[i].Color == "" {
			panes[i].Color = req.GlassColor
		}
		if panes[i].Thickness == "" {
			panes[i].Thickness = req.GlassThickness
		}
	}

	hardware := make([]pricing.HardwareSelection, 0, len(req.Hardware))
	for _, h := range req.Hardware {
		hardware = append(hardware, pricing.HardwareSelection{Name: h.Name, Quantity: h.Quantity})
	}
	services := make([]pricing.ServiceSelection, 0, len(req.Services))
	for _, sv := range req.Services {
		services = append(services, pricing.ServiceSelection{Name: sv.Name, Price: sv.Price})
	}

	tc := pricing.TenantContext{Settings: *settings, Catalog: snapshot}
	return pricing.ComputePrice(tc, req.ConfigurationType, panes, hardware, services, pricing.Options{
		CustomColor:  req.Options.CustomColor,
		ExactHeight:  req.Options.ExactHeight,
		Delivery:     req.Options.Delivery,
		Installation: req.Options.Installation,
		Dismantling:  req.Options.Dismantling,
	})
}
