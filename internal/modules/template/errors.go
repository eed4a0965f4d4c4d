package template

import "errors"

var (
	ErrNotFound       = errors.New("template not found")
	ErrValidation     = errors.New("validation error")
	ErrSystemTemplate = errors.New("system template cannot be deleted")
)
