package service

import "errors"

var (
	// ErrNotFound means the requested record does not exist in the store,
	// as opposed to the store being unreachable.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks input rejected before any store call.
	ErrValidation = errors.New("validation")
)
