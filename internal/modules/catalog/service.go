package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"glassworks/internal/domain"
)

type Service struct {
	repo CatalogRepository
}

func NewService(repo CatalogRepository) *Service {
	return &Service{repo: repo}
}

/* ---------- GLASS ---------- */

func (s *Service) ListGlass(ctx context.Context, companyID int64) ([]domain.GlassPrice, error) {
	return s.repo.ListGlass(ctx, companyID)
}

func (s *Service) CreateGlass(ctx context.Context, companyID int64, req GlassPriceRequest) (*domain.GlassPrice, error) {
	if *req.PricePerSqm < 0 {
		return nil, ErrValidation
	}
	g := req.toDomain(companyID, 0)
	if err := s.repo.CreateGlass(ctx, g); err != nil {
		return nil, mapWriteError(err)
	}
	return g, nil
}

func (s *Service) UpdateGlass(ctx context.Context, companyID, id int64, req GlassPriceRequest) (*domain.GlassPrice, error) {
	if *req.PricePerSqm < 0 {
		return nil, ErrValidation
	}
	g := req.toDomain(companyID, id)
	if err := s.repo.UpdateGlass(ctx, g); err != nil {
		return nil, mapWriteError(err)
	}
	return g, nil
}

func (s *Service) DeleteGlass(ctx context.Context, companyID, id int64) error {
	return s.repo.DeleteGlass(ctx, companyID, id)
}

/* ---------- HARDWARE ---------- */

func (s *Service) ListHardware(ctx context.Context, companyID int64) ([]domain.HardwareItem, error) {
	return s.repo.ListHardware(ctx, companyID)
}

func (s *Service) CreateHardware(ctx context.Context, companyID int64, req HardwareItemRequest) (*domain.HardwareItem, error) {
	if req.UnitPrice != nil && *req.UnitPrice < 0 {
		return nil, ErrValidation
	}
	h := req.toDomain(companyID, 0)
	if err := s.repo.CreateHardware(ctx, h); err != nil {
		return nil, mapWriteError(err)
	}
	return h, nil
}

func (s *Service) UpdateHardware(ctx context.Context, companyID, id int64, req HardwareItemRequest) (*domain.HardwareItem, error) {
	if req.UnitPrice != nil && *req.UnitPrice < 0 {
		return nil, ErrValidation
	}
	h := req.toDomain(companyID, id)
	if err := s.repo.UpdateHardware(ctx, h); err != nil {
		return nil, mapWriteError(err)
	}
	return h, nil
}

func (s *Service) DeleteHardware(ctx context.Context, companyID, id int64) error {
	return s.repo.DeleteHardware(ctx, companyID, id)
}

/* ---------- SERVICES ---------- */

func (s *Service) ListServices(ctx context.Context, companyID int64) ([]domain.ServiceItem, error) {
	return s.repo.ListServices(ctx, companyID)
}

func (s *Service) CreateService(ctx context.Context, companyID int64, req ServiceItemRequest) (*domain.ServiceItem, error) {
	if *req.Price < 0 {
		return nil, ErrValidation
	}
	item := req.toDomain(companyID, 0)
	if err := s.repo.CreateService(ctx, item); err != nil {
		return nil, mapWriteError(err)
	}
	return item, nil
}

func (s *Service) UpdateService(ctx context.Context, companyID, id int64, req ServiceItemRequest) (*domain.ServiceItem, error) {
	if *req.Price < 0 {
		return nil, ErrValidation
	}
	item := req.toDomain(companyID, id)
	if err := s.repo.UpdateService(ctx, item); err != nil {
		return nil, mapWriteError(err)
	}
	return item, nil
}

func (s *Service) DeleteService(ctx context.Context, companyID, id int64) error {
	return s.repo.DeleteService(ctx, companyID, id)
}

/* ---------- BASE COSTS ---------- */

func (s *Service) ListBaseCosts(ctx context.Context, companyID int64) ([]domain.BaseCost, error) {
	return s.repo.ListBaseCosts(ctx, companyID)
}

func (s *Service) CreateBaseCost(ctx context.Context, companyID int64, req BaseCostRequest) (*domain.BaseCost, error) {
	if *req.Value < 0 {
		return nil, ErrValidation
	}
	b := req.toDomain(companyID, 0)
	if err := s.repo.CreateBaseCost(ctx, b); err != nil {
		return nil, mapWriteError(err)
	}
	return b, nil
}

func (s *Service) UpdateBaseCost(ctx context.Context, companyID, id int64, req BaseCostRequest) (*domain.BaseCost, error) {
	if *req.Value < 0 {
		return nil, ErrValidation
	}
	b := req.toDomain(companyID, id)
	if err := s.repo.UpdateBaseCost(ctx, b); err != nil {
		return nil, mapWriteError(err)
	}
	return b, nil
}

func (s *Service) DeleteBaseCost(ctx context.Context, companyID, id int64) error {
	return s.repo.DeleteBaseCost(ctx, companyID, id)
}

func mapWriteError(err error) error {
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// isUniqueViolation catches the postgres unique-violation code and the sqlite
// message used in tests.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
