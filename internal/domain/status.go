package domain

import "time"

// Status is one tenant-scoped kanban column. SortOrder is mutable via
// drag-reorder; (company_id, name) is unique.
type Status struct {
	ID                      int64     `json:"id"`
	CompanyID               int64     `json:"company_id" gorm:"uniqueIndex:idx_status_company_name"`
	Name                    string    `json:"name" gorm:"uniqueIndex:idx_status_company_name"`
	Color                   string    `json:"color"`
	SortOrder               int       `json:"sort_order"`
	IsDefault               bool      `json:"is_default"`
	IsActive                bool      `json:"is_active"`
	IsCompletedForAnalytics bool      `json:"is_completed_for_analytics"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}
