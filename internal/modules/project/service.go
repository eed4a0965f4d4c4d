package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"glassworks/internal/domain"
)

type Service struct {
	projects ProjectRepository
	statuses StatusRepository
	pricer   PriceComputer
}

func NewService(projects ProjectRepository, statuses StatusRepository, pricer PriceComputer) *Service {
	return &Service{projects: projects, statuses: statuses, pricer: pricer}
}

// price resolves the total to persist: the operator's manual override when
// given, otherwise a fresh engine computation.
func (s *Service) price(ctx context.Context, companyID int64, req SaveProjectRequest) (float64, error) {
	if req.ManualPrice != nil {
		if *req.ManualPrice < 0 {
			return 0, ErrValidation
		}
		return *req.ManualPrice, nil
	}

	b, err := s.pricer.ComputePrice(ctx, companyID, req.toQuoteRequest())
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// Create saves a new project with its initial price snapshot and status
// history entry.
func (s *Service) Create(ctx context.Context, companyID int64, req SaveProjectRequest) (*domain.Project, error) {
	total, err := s.price(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	status, err := s.statuses.GetDefault(ctx, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoStatuses
	}
	if err != nil {
		return nil, err
	}

	p := &domain.Project{
		CompanyID:    companyID,
		Reference:    newReference(),
		CurrentPrice: total,
		StatusID:     status.ID,
	}
	req.apply(p)

	if err := s.projects.Create(ctx, p, status.Name); err != nil {
		return nil, err
	}
	return s.Get(ctx, companyID, p.ID)
}

// Update applies an edit and appends a price snapshot. Last write wins on
// concurrent edits; the ledger keeps every snapshot regardless.
func (s *Service) Update(ctx context.Context, companyID, id int64, req SaveProjectRequest) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	total, err := s.price(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	req.apply(p)
	p.CurrentPrice = total

	if err := s.projects.SaveWithSnapshot(ctx, p); err != nil {
		return nil, err
	}
	return s.Get(ctx, companyID, id)
}

// SetStatus is the board-move path: it touches only the status field and the
// status ledger, never the price.
func (s *Service) SetStatus(ctx context.Context, companyID, projectID, statusID int64) (*domain.Project, error) {
	status, err := s.statuses.GetByID(ctx, companyID, statusID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStatusNotFound
	}
	if err != nil {
		return nil, err
	}

	err = s.projects.SetStatus(ctx, companyID, projectID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, companyID, projectID)
}

func (s *Service) Get(ctx context.Context, companyID, id int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.PriceHistory, err = s.projects.PriceHistory(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.StatusHistory, err = s.projects.StatusHistory(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, companyID int64, statusID *int64) ([]domain.Project, error) {
	return s.projects.List(ctx, companyID, statusID)
}

func newReference() string {
	return fmt.Sprintf("Q-%s", uuid.NewString()[:8])
}
