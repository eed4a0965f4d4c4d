package company

import "errors"

var (
	ErrNotFound   = errors.New("company not found")
	ErrEmailTaken = errors.New("email already registered")
)
