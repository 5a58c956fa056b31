package instance

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when an instance would contain no points.
	ErrEmpty = errors.New("instance: no points")

	// ErrZeroDimension is returned for 0-dimensional points.
	ErrZeroDimension = errors.New("instance: points must have at least one dimension")

	// ErrDimensionMismatch is returned when points differ in dimensionality.
	ErrDimensionMismatch = errors.New("instance: dimension mismatch")

	// ErrBadRange is returned by Random for an invalid coordinate range.
	ErrBadRange = errors.New("instance: invalid coordinate range")
)

// SyntaxError reports a malformed line of an instance file.
// Line is 1-based.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("instance: syntax error at line %d", e.Line)
	}

	return fmt.Sprintf("instance: syntax error at line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// IOError reports a failure to open or read an instance source.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("instance: io error: %v", e.Err)
	}

	return fmt.Sprintf("instance: io error on %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
