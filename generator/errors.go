package generator

import "errors"

var (
	// ErrInvalidProfile marks a product profile that fails validation.
	ErrInvalidProfile = errors.New("invalid product profile")

	// ErrSeriesTooShort is returned when a series has too few records to
	// sample anomaly positions from.
	ErrSeriesTooShort = errors.New("series too short for anomaly injection")
)
