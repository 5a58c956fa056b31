// Package mdp - unified dispatcher.
//
// NewSolver builds any algorithm of this package from a flat Options value;
// Solve is the one-shot shortcut. The bench runner and the CLI use these
// entry points so that a parameter sweep is just a list of Options.
package mdp

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/diversity/instance"
)

// Algorithm names a solver.
type Algorithm string

// Known algorithms.
const (
	AlgoGreedy           Algorithm = "greedy"
	AlgoRandomizedGreedy Algorithm = "randomized-greedy"
	AlgoGRASP            Algorithm = "grasp"
	AlgoTabu             Algorithm = "tabu"
	AlgoBranchAndBound   Algorithm = "bnb"
	AlgoDeepBranchBound  Algorithm = "deep-bnb"
)

// Algorithms lists every known algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoGreedy, AlgoRandomizedGreedy, AlgoGRASP, AlgoTabu, AlgoBranchAndBound, AlgoDeepBranchBound}
}

// ParseAlgorithm maps a name (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if strings.EqualFold(name, string(a)) {
			return a, nil
		}
	}

	return "", fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// IsExact reports whether a is an exact (branch-and-bound) algorithm.
func (a Algorithm) IsExact() bool {
	return a == AlgoBranchAndBound || a == AlgoDeepBranchBound
}

// Options configures NewSolver. Fields irrelevant to the chosen algorithm
// are ignored.
type Options struct {
	// Algorithm selects the solver.
	Algorithm Algorithm

	// Size is the number of points to select (m).
	Size int

	// RCLSize is the restricted candidate list size
	// (randomized-greedy, grasp).
	RCLSize int

	// Iterations is the GRASP iteration count or the number of tabu starts.
	Iterations int

	// Tenure is the tabu tenure.
	Tenure int

	// InnerIterations is the number of consecutive non-improving tabu
	// iterations that ends one start.
	InnerIterations int

	// Seed feeds the random stream of randomized solvers (0 ⇒ default seed).
	Seed int64

	// Rand, when non-nil, is used instead of a stream built from Seed.
	Rand *rand.Rand

	// Seeder is the algorithm producing the initial incumbent of
	// branch-and-bound. It must not be an exact algorithm.
	Seeder Algorithm

	// NodePolicy overrides the node order of branch-and-bound when
	// PolicySet is true.
	NodePolicy NodePolicy
	PolicySet  bool

	// Logger receives Debug events from the solver; nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the settings of the reference experiments:
// greedy, GRASP with 10 iterations and an RCL of 2, tabu with tenure 2 and
// 10 non-improving inner iterations, branch-and-bound seeded by greedy.
func DefaultOptions() Options {
	return Options{
		Algorithm:       AlgoGreedy,
		Size:            2,
		RCLSize:         2,
		Iterations:      10,
		Tenure:          2,
		InnerIterations: 10,
		Seeder:          AlgoGreedy,
	}
}

// NewSolver builds the solver described by opts.
//
// Errors: ErrUnknownAlgorithm plus every constructor error of the
// selected algorithm.
func NewSolver(opts Options) (Solver, error) {
	var (
		rng  = opts.Rand
		with []Option
	)
	if opts.Logger != nil {
		with = append(with, WithLogger(*opts.Logger))
	}
	if rng == nil {
		rng = RNGFromSeed(opts.Seed)
	}

	switch opts.Algorithm {
	case AlgoGreedy:
		return NewGreedy(opts.Size, with...)
	case AlgoRandomizedGreedy:
		return NewRandomizedGreedy(opts.Size, opts.RCLSize, rng, with...)
	case AlgoGRASP:
		return NewGRASP(opts.Size, opts.RCLSize, Swap{}, opts.Iterations, rng, with...)
	case AlgoTabu:
		return NewTabuSearch(opts.Size, opts.Tenure, opts.Iterations, opts.InnerIterations, rng, with...)
	case AlgoBranchAndBound, AlgoDeepBranchBound:
		seedOpts := opts
		seedOpts.Algorithm = opts.Seeder
		if seedOpts.Algorithm == "" {
			seedOpts.Algorithm = AlgoGreedy
		}
		if seedOpts.Algorithm.IsExact() {
			return nil, fmt.Errorf("seeder %q must be a heuristic: %w", seedOpts.Algorithm, ErrUnknownAlgorithm)
		}
		seedOpts.Rand = rng
		seed, err := NewSolver(seedOpts)
		if err != nil {
			return nil, fmt.Errorf("seeder: %w", err)
		}
		if opts.PolicySet {
			if !opts.NodePolicy.valid() {
				return nil, fmt.Errorf("%v: %w", opts.NodePolicy, ErrUnknownPolicy)
			}
			with = append(with, WithNodePolicy(opts.NodePolicy))
		}
		if opts.Algorithm == AlgoDeepBranchBound {
			return NewDeepBranchAndBound(seed, with...)
		}
		return NewBranchAndBound(seed, with...)
	default:
		return nil, fmt.Errorf("%q: %w", opts.Algorithm, ErrUnknownAlgorithm)
	}
}

// Solve builds the solver described by opts and runs it on inst.
func Solve(inst *instance.Instance, opts Options) (Solution, error) {
	s, err := NewSolver(opts)
	if err != nil {
		return Solution{}, err
	}

	return s.Solve(inst)
}
