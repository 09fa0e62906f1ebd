package store

import "errors"

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrInvalidMinutes   = errors.New("minutes must be non-negative")
	ErrEmptyServiceType = errors.New("service type is required")
)
