package twig

import "github.com/pkg/errors"

// Sentinel errors for bitmap construction.
var (
	// ErrInvalidDimensions is returned when a bitmap is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("twig: invalid bitmap dimensions")

	// ErrAllocation is returned when a bitmap's pixel storage cannot be
	// allocated: its byte size overflows int or exceeds MaxPixels.
	ErrAllocation = errors.New("twig: bitmap allocation failed")
)
