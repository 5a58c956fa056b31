// Package geom provides the Point value type used by every solver in
// this module.
//
// A Point is an immutable d-dimensional vector of float64 coordinates.
// Points are small, compared coordinate-wise with exact equality, and
// copied freely by value: the coordinate slice is never exposed for
// mutation.
//
// Provided operations:
//   - Distance: Euclidean norm of the difference of two points.
//   - Equal:    exact coordinate-wise match.
//   - Centroid: coordinate-wise mean of a non-empty set of points.
//
// Numeric work is delegated to gonum/floats.
package geom
