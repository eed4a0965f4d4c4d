package catalog

import "errors"

var (
	ErrNotFound   = errors.New("catalog entry not found")
	ErrDuplicate  = errors.New("catalog entry already exists")
	ErrValidation = errors.New("validation error")
)
