package company

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"glassworks/internal/domain"
	"glassworks/internal/modules/template"
)

// defaultStatuses is the pipeline a fresh tenant starts with.
var defaultStatuses = []domain.Status{
	{Name: "Новый", Color: "#3b82f6", SortOrder: 0, IsDefault: true, IsActive: true},
	{Name: "Замер", Color: "#f59e0b", SortOrder: 1, IsActive: true},
	{Name: "В работе", Color: "#8b5cf6", SortOrder: 2, IsActive: true},
	{Name: "Установлен", Color: "#22c55e", SortOrder: 3, IsActive: true, IsCompletedForAnalytics: true},
	{Name: "Отменён", Color: "#ef4444", SortOrder: 4, IsActive: true},
}

var defaultSettings = domain.Settings{
	Currency:     domain.CurrencyGEL,
	BaseCostMode: domain.BaseCostFixed,
}

type Service struct {
	companies CompanyRepository
	users     UserRepository
	settings  SettingsRepository
	statuses  StatusRepository
	templates TemplateRepository
}

func NewService(
	companies CompanyRepository,
	users UserRepository,
	settings SettingsRepository,
	statuses StatusRepository,
	templates TemplateRepository,
) *Service {
	return &Service{
		companies: companies,
		users:     users,
		settings:  settings,
		statuses:  statuses,
		templates: templates,
	}
}

// Provision creates a tenant ready for its first quote: the company row, its
// admin user, default settings, the status pipeline, and a system template per
// built-in configuration type.
func (s *Service) Provision(ctx context.Context, req ProvisionRequest) (*domain.Company, *domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.AdminEmail)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	c := &domain.Company{
		Name:    strings.TrimSpace(req.CompanyName),
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, nil, err
	}

	admin := &domain.User{
		CompanyID:    c.ID,
		Email:        req.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         req.AdminName,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return nil, nil, err
	}

	cfg := defaultSettings
	cfg.CompanyID = c.ID
	if err := s.settings.Upsert(ctx, &cfg); err != nil {
		return nil, nil, err
	}

	for _, st := range defaultStatuses {
		st.CompanyID = c.ID
		if err := s.statuses.Create(ctx, &st); err != nil {
			return nil, nil, err
		}
	}

	for _, t := range domain.BuiltinConfigurationTypes {
		if err := s.templates.Create(ctx, template.FallbackDefault(c.ID, t)); err != nil {
			return nil, nil, err
		}
	}

	return c, admin, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *Service) ListUsers(ctx context.Context, companyID int64) ([]domain.User, error) {
	return s.users.ListByCompany(ctx, companyID)
}
