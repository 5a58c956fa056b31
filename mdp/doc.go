// Package mdp provides solvers for the Maximum Diversity Problem.
//
// Given an instance of n points and a target size m, an MDP solver selects
// m points maximizing z, the sum of pairwise Euclidean distances among the
// selected points.
//
// Algorithms:
//
//   - Greedy: deterministic farthest-from-centroid construction.
//   - RandomizedGreedy: the same construction picking uniformly from a
//     restricted candidate list (RCL) of the farthest points.
//   - Swap: best-improvement local search over one-point swaps; Improve
//     drives any LocalSearch to a local optimum.
//   - GRASP: multistart RandomizedGreedy + LocalSearch.
//   - TabuSearch: multistart over GRASP seeds with a tabu-memory swap
//     descent and an aspiration criterion.
//   - BranchAndBound: exact search seeded by any Solver, with an
//     admissible upper bound and a configurable node-selection policy
//     (smallest bound first, largest bound first, deepest first).
//
// All solvers implement Solver. Parameters are validated at construction;
// solving fails only on instance-dependent preconditions (for example, an
// instance with fewer than m points). Errors are package sentinels, see
// types.go.
//
// Randomized solvers take an explicit *rand.Rand. A nil generator means the
// deterministic default stream (see rng.go), so every run is reproducible.
//
// Solvers are single-threaded and not safe for concurrent use.
//
// The generic entry point is Solve / NewSolver, which build any algorithm
// from a flat Options value.
package mdp
