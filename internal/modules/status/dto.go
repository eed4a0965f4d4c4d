package status

import "glassworks/internal/domain"

type SaveStatusRequest struct {
	Name                    string `json:"name" binding:"required"`
	Color                   string `json:"color"`
	SortOrder               *int   `json:"sort_order"`
	IsDefault               bool   `json:"is_default"`
	IsActive                *bool  `json:"is_active"`
	IsCompletedForAnalytics bool   `json:"is_completed_for_analytics"`
}

func (r SaveStatusRequest) apply(s *domain.Status) {
	s.Name = r.Name
	s.Color = r.Color
	if r.SortOrder != nil {
		s.SortOrder = *r.SortOrder
	}
	s.IsDefault = r.IsDefault
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	} else {
		s.IsActive = true
	}
	s.IsCompletedForAnalytics = r.IsCompletedForAnalytics
}

type ReorderRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}
