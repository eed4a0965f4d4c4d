package template

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"glassworks/internal/domain"
)

type Service struct {
	templates TemplateRepository
}

func NewService(templates TemplateRepository) *Service {
	return &Service{templates: templates}
}

// Resolve expands a configuration selector into a full template definition.
// Selector is either a built-in type tag or a custom template id. Built-in
// tags resolve the tenant's system template of that type and fall back to the
// hard-coded legacy defaults for tenants never migrated to templates. An
// unknown custom id is a recoverable NotFound, not a fatal error.
func (s *Service) Resolve(ctx context.Context, companyID int64, selector string) (*domain.Template, error) {
	if t := domain.ConfigurationType(selector); t.IsBuiltin() {
		tpl, err := s.templates.GetSystemByType(ctx, companyID, t)
		if err != nil {
			return nil, err
		}
		if tpl != nil {
			return tpl, nil
		}
		return FallbackDefault(companyID, t), nil
	}

	id, err := strconv.ParseInt(selector, 10, 64)
	if err != nil {
		return nil, ErrNotFound
	}
	tpl, err := s.templates.GetByID(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

// Legacy default hardware/service name lists, kept from before tenants had
// editable templates. They are matched against catalogs by normalized name.
var (
	fallbackHardware = []string{"Профиль", "Ручка", "Петля", "Уплотнитель"}
	fallbackServices = []string{"Закалка", "Обработка кромки"}
)

// FallbackDefault synthesizes the built-in template for a configuration type.
func FallbackDefault(companyID int64, t domain.ConfigurationType) *domain.Template {
	tpl := &domain.Template{
		CompanyID:             companyID,
		Name:                  string(t),
		Type:                  t,
		SizeAdjustments:       domain.SizeAdjustments{DoorHeightReduction: 8, ThresholdReduction: 12},
		DefaultHardware:       append([]string(nil), fallbackHardware...),
		DefaultServices:       append([]string(nil), fallbackServices...),
		CustomColorOption:     true,
		ExactHeightOption:     true,
		DefaultGlassColor:     "прозрачный",
		DefaultGlassThickness: "8",
		IsSystem:              true,
	}

	switch t {
	case domain.ConfigGlass, domain.ConfigPartition:
		tpl.GlassConfig = []domain.GlassPaneConfig{
			{Name: "стекло", PaneType: domain.PaneStationary},
		}
	case domain.ConfigStraight:
		tpl.GlassConfig = []domain.GlassPaneConfig{
			{Name: "стационар", PaneType: domain.PaneStationary},
			{Name: "дверь", PaneType: domain.PaneSwingDoor},
		}
	case domain.ConfigCorner:
		tpl.GlassConfig = []domain.GlassPaneConfig{
			{Name: "стационар 1", PaneType: domain.PaneStationary},
			{Name: "дверь 1", PaneType: domain.PaneSwingDoor},
			{Name: "стационар 2", PaneType: domain.PaneStationary},
			{Name: "дверь 2", PaneType: domain.PaneSwingDoor},
		}
	case domain.ConfigUnique:
		// Pane list is user-defined per project.
		tpl.GlassConfig = nil
	}
	return tpl
}

func (s *Service) List(ctx context.Context, companyID int64) ([]domain.Template, error) {
	return s.templates.List(ctx, companyID)
}

func (s *Service) Get(ctx context.Context, companyID, id int64) (*domain.Template, error) {
	tpl, err := s.templates.GetByID(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *Service) Create(ctx context.Context, companyID int64, req SaveTemplateRequest) (*domain.Template, error) {
	if req.Name == "" {
		return nil, ErrValidation
	}
	tpl := req.toDomain(companyID)
	tpl.IsSystem = false
	if tpl.Type == "" {
		tpl.Type = domain.ConfigCustom
	}
	if err := s.templates.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Update edits a template in place. System templates are editable too; they
// just can never be deleted.
func (s *Service) Update(ctx context.Context, companyID, id int64, req SaveTemplateRequest) (*domain.Template, error) {
	existing, err := s.Get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	tpl := req.toDomain(companyID)
	tpl.ID = existing.ID
	tpl.Type = existing.Type
	tpl.IsSystem = existing.IsSystem
	tpl.CreatedAt = existing.CreatedAt
	if err := s.templates.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id int64) error {
	existing, err := s.Get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if existing.IsSystem {
		return ErrSystemTemplate
	}
	affected, err := s.templates.Delete(ctx, companyID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
