package geom

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is an immutable point in a d-dimensional real space.
// The zero value is the 0-dimensional point.
type Point struct {
	c []float64
}

// New returns a Point holding a private copy of coords.
func New(coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)

	return Point{c: c}
}

// Dim returns the dimensionality of p.
func (p Point) Dim() int { return len(p.c) }

// At returns the i-th coordinate. It panics if i is out of range.
func (p Point) At(i int) float64 { return p.c[i] }

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 {
	out := make([]float64, len(p.c))
	copy(out, p.c)

	return out
}

// Validate reports ErrBadCoordinate if any coordinate is NaN or ±Inf.
func (p Point) Validate() error {
	for _, v := range p.c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadCoordinate
		}
	}

	return nil
}

// Distance returns the Euclidean distance between p and q.
// Both points must share the same dimensionality; a mismatch is a
// programmer error and panics.
//
// Complexity: O(d).
func (p Point) Distance(q Point) float64 {
	if len(p.c) != len(q.c) {
		panic(ErrDimensionMismatch)
	}

	return floats.Distance(p.c, q.c, 2)
}

// Equal reports whether p and q have the same dimensionality and
// exactly the same coordinates.
func (p Point) Equal(q Point) bool {
	return floats.Equal(p.c, q.c)
}

// String renders p as comma separated coordinates, e.g. "2, 3.5".
func (p Point) String() string {
	var sb strings.Builder
	for i, v := range p.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}

	return sb.String()
}

// Centroid returns the coordinate-wise mean of points.
//
// Errors: ErrEmpty for no points, ErrDimensionMismatch when the points
// do not share one dimensionality.
//
// Complexity: O(len(points)·d).
func Centroid(points ...Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrEmpty
	}
	var d = points[0].Dim()
	sum := make([]float64, d)
	for _, p := range points {
		if p.Dim() != d {
			return Point{}, ErrDimensionMismatch
		}
		floats.Add(sum, p.c)
	}
	n := float64(len(points))
	for i := range sum {
		sum[i] /= n
	}

	return Point{c: sum}, nil
}
