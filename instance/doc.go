// Package instance holds the read-only input of every MDP solver: an
// ordered, fixed collection of points sharing one dimensionality.
//
// The position of a point in the instance is its canonical index. Solvers
// refer to points by index only, which keeps subset membership O(1) and
// lets branch-and-bound enumerate subsets in ascending index order.
//
// Pairwise Euclidean distances are computed once, at construction, into a
// symmetric gonum matrix; Distance(i, j) is a constant-time lookup.
//
// Besides the Instance type this package offers:
//   - Parse / Load: the line-oriented text format (count, dimensionality,
//     then one tab- or comma-separated point per line).
//   - Write:        the inverse of Parse.
//   - Random:       a seeded generator of synthetic instances.
//
// Instances must not contain two coordinate-identical points. The
// constructor does not enforce this; solvers are unaffected because they
// track indices, but the diversity of such an instance is ill-defined.
package instance
