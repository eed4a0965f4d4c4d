package quote

import (
	"errors"

	"glassworks/internal/pricing"
)

var (
	ErrValidation = errors.New("validation error")

	// ErrConfigurationMissing surfaces the pricing engine's hard error for
	// tenants without a settings row.
	ErrConfigurationMissing = pricing.ErrConfigurationMissing

	ErrTemplateNotFound = errors.New("template not found")
)
