package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound     = errors.New("not found")
	ErrSoldOut      = errors.New("no free slots")
	ErrInvalidInput = errors.New("invalid input")
)
