package mdp

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/diversity/instance"
)

// GRASP is the Greedy Randomized Adaptive Search Procedure: every
// iteration builds a RandomizedGreedy solution, improves it with a
// LocalSearch, and the best improved solution over all iterations wins
// (the earliest one on ties).
type GRASP struct {
	size       int
	rclSize    int
	iterations int
	ls         LocalSearch
	rng        *rand.Rand
	log        zerolog.Logger
}

// NewGRASP returns a GRASP solver. A nil rng uses the default
// deterministic stream; every constructive phase draws from it.
//
// Errors: ErrBadSize, ErrBadRCL, ErrNilLocalSearch, ErrBadIterations.
func NewGRASP(size, rclSize int, ls LocalSearch, iterations int, rng *rand.Rand, opts ...Option) (*GRASP, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if rclSize <= 0 {
		return nil, ErrBadRCL
	}
	if ls == nil {
		return nil, ErrNilLocalSearch
	}
	if iterations <= 0 {
		return nil, ErrBadIterations
	}
	s := newSettings(opts)

	return &GRASP{
		size:       size,
		rclSize:    rclSize,
		iterations: iterations,
		ls:         ls,
		rng:        orDefault(rng),
		log:        s.log,
	}, nil
}

// Solve runs all iterations and returns the best local optimum found.
//
// Errors: ErrNilInstance, ErrNotEnoughPoints, or any LocalSearch error.
//
// Complexity: iterations × (construction + local search).
func (g *GRASP) Solve(inst *instance.Instance) (Solution, error) {
	if err := validateFits(inst, g.size); err != nil {
		return Solution{}, err
	}

	var (
		best  Solution
		bestZ float64
		found bool
	)
	for it := 0; it < g.iterations; it++ {
		constructor, err := NewRandomizedGreedy(g.size, g.rclSize, g.rng)
		if err != nil {
			return Solution{}, err
		}
		start, err := constructor.Solve(inst)
		if err != nil {
			return Solution{}, err
		}
		sol, err := Improve(inst, g.ls, start)
		if err != nil {
			return Solution{}, err
		}
		if z := sol.Z(); !found || z > bestZ {
			best, bestZ, found = sol, z, true
			g.log.Debug().Int("iteration", it).Float64("z", z).Msg("grasp improved best")
		}
	}

	return best, nil
}
