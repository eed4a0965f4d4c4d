package status

import "errors"

var (
	ErrNotFound = errors.New("status not found")
	ErrInUse    = errors.New("status has projects assigned")
)
