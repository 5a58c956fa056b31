package instance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/diversity/geom"
)

// Instance is an ordered, immutable collection of points.
// It is safe for concurrent reads.
type Instance struct {
	points []geom.Point
	dim    int
	dist   *mat.SymDense
}

// New builds an Instance from points, preserving their order.
//
// Contract:
//   - len(points) ≥ 1, every point has the same dimensionality d ≥ 1.
//   - coordinates are finite.
//
// Complexity: O(n²·d) time and O(n²) space for the distance matrix.
func New(points []geom.Point) (*Instance, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	var d = points[0].Dim()
	if d == 0 {
		return nil, ErrZeroDimension
	}
	for i, p := range points {
		if p.Dim() != d {
			return nil, fmt.Errorf("point %d has %d coordinates, want %d: %w", i, p.Dim(), d, ErrDimensionMismatch)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}

	var n = len(points)
	inst := &Instance{
		points: make([]geom.Point, n),
		dim:    d,
		dist:   mat.NewSymDense(n, nil),
	}
	copy(inst.points, points)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			inst.dist.SetSym(i, j, points[i].Distance(points[j]))
		}
	}

	return inst, nil
}

// MustNew is like New but panics on error. Intended for tests and
// package-level fixtures.
func MustNew(points ...geom.Point) *Instance {
	inst, err := New(points)
	if err != nil {
		panic(err)
	}

	return inst
}

// Len returns the number of points.
func (in *Instance) Len() int { return len(in.points) }

// Dim returns the shared dimensionality of the points.
func (in *Instance) Dim() int { return in.dim }

// Point returns the point at canonical index i.
func (in *Instance) Point(i int) geom.Point { return in.points[i] }

// Points returns a copy of the ordered point list.
func (in *Instance) Points() []geom.Point {
	out := make([]geom.Point, len(in.points))
	copy(out, in.points)

	return out
}

// Distance returns the cached Euclidean distance between points i and j.
func (in *Instance) Distance(i, j int) float64 { return in.dist.At(i, j) }
