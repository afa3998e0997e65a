package design

import "errors"

var (
	// ErrConfigNotFound is returned when no design configuration can be
	// located for a file.
	ErrConfigNotFound = errors.New("design config not found")

	// ErrInvalidConfig is returned when a configuration cannot be parsed or
	// violates a structural invariant.
	ErrInvalidConfig = errors.New("invalid design config")
)
