package mdp

import (
	"errors"

	"github.com/katalvlaran/diversity/instance"
)

// Sentinel errors. Callers match them with errors.Is; solvers may wrap
// them with context.
var (
	// ErrBadSize is returned for a non-positive target size.
	ErrBadSize = errors.New("mdp: target size must be positive")

	// ErrNotEnoughPoints is returned when the instance holds fewer points
	// than the requested solution size.
	ErrNotEnoughPoints = errors.New("mdp: instance has fewer points than requested")

	// ErrBadRCL is returned for a non-positive restricted candidate list size.
	ErrBadRCL = errors.New("mdp: RCL size must be positive")

	// ErrBadIterations is returned for a non-positive iteration count.
	ErrBadIterations = errors.New("mdp: iteration count must be positive")

	// ErrBadTenure is returned for a non-positive tabu tenure.
	ErrBadTenure = errors.New("mdp: tabu tenure must be positive")

	// ErrTenureTooLarge is returned when size+tenure leaves no non-tabu
	// candidate outside the solution.
	ErrTenureTooLarge = errors.New("mdp: size plus tenure must be smaller than the instance")

	// ErrNilInstance is returned when a nil instance is passed to a solver.
	ErrNilInstance = errors.New("mdp: nil instance")

	// ErrNilLocalSearch is returned when GRASP is built without a local search.
	ErrNilLocalSearch = errors.New("mdp: nil local search")

	// ErrNilSeeder is returned when branch-and-bound is built without a seed solver.
	ErrNilSeeder = errors.New("mdp: nil seed solver")

	// ErrForeignSolution is returned when a solution is used with an
	// instance it was not drawn from.
	ErrForeignSolution = errors.New("mdp: solution belongs to another instance")

	// ErrBadIndex is returned when a solution references an index outside
	// the instance or repeats one.
	ErrBadIndex = errors.New("mdp: invalid point index")

	// ErrUnknownAlgorithm is returned by the dispatcher for unknown names.
	ErrUnknownAlgorithm = errors.New("mdp: unknown algorithm")

	// ErrUnknownPolicy is returned for unknown node-selection policies.
	ErrUnknownPolicy = errors.New("mdp: unknown node policy")
)

// Solver is implemented by every MDP algorithm.
type Solver interface {
	// Solve returns a solution for inst.
	Solve(inst *instance.Instance) (Solution, error)
}

// LocalSearch explores the neighborhood of a solution.
type LocalSearch interface {
	// PerformSearch returns the best solution in the neighborhood of s.
	// The result may be worse than s; Improve decides acceptance.
	PerformSearch(inst *instance.Instance, s Solution) (Solution, error)
}

// Compile-time checks.
var (
	_ Solver      = (*Greedy)(nil)
	_ Solver      = (*RandomizedGreedy)(nil)
	_ Solver      = (*GRASP)(nil)
	_ Solver      = (*TabuSearch)(nil)
	_ Solver      = (*BranchAndBound)(nil)
	_ LocalSearch = Swap{}
)
