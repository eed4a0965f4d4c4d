package status

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glassworks/internal/domain"
)

type Service struct {
	repo StatusRepository
}

func NewService(repo StatusRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, companyID int64) ([]domain.Status, error) {
	return s.repo.List(ctx, companyID)
}

func (s *Service) Create(ctx context.Context, companyID int64, req SaveStatusRequest) (*domain.Status, error) {
	st := &domain.Status{CompanyID: companyID}
	req.apply(st)
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) Update(ctx context.Context, companyID, id int64, req SaveStatusRequest) (*domain.Status, error) {
	st, err := s.repo.GetByID(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	req.apply(st)
	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Delete refuses to remove a column that still has projects in it. Re-assign
// the projects first, then delete.
func (s *Service) Delete(ctx context.Context, companyID, id int64) error {
	if _, err := s.repo.GetByID(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	cnt, err := s.repo.CountProjects(ctx, companyID, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrInUse
	}
	return s.repo.Delete(ctx, companyID, id)
}

func (s *Service) Reorder(ctx context.Context, companyID int64, ids []int64) ([]domain.Status, error) {
	err := s.repo.Reorder(ctx, companyID, ids)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, companyID)
}
