package project

import "errors"

var (
	ErrNotFound       = errors.New("project not found")
	ErrStatusNotFound = errors.New("status not found")
	ErrValidation     = errors.New("validation error")
	ErrNoStatuses     = errors.New("company has no statuses configured")
)
