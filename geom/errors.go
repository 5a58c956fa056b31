package geom

import "errors"

var (
	// ErrEmpty is returned when an operation needs at least one point.
	ErrEmpty = errors.New("geom: no points")

	// ErrDimensionMismatch is returned when points of different
	// dimensionality are combined.
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")

	// ErrBadCoordinate is returned for NaN or infinite coordinates.
	ErrBadCoordinate = errors.New("geom: NaN or Inf coordinate")
)
