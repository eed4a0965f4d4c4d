package settings

import "errors"

var (
	ErrNotConfigured = errors.New("settings not configured")
	ErrValidation    = errors.New("validation error")
)
