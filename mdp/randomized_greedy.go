package mdp

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/diversity/instance"
)

// RandomizedGreedy is the stochastic variant of Greedy: at every step it
// draws uniformly from a restricted candidate list holding the rclSize
// points farthest from the current centroid.
//
// Calls are independent; the only carried state is the generator.
type RandomizedGreedy struct {
	size    int
	rclSize int
	rng     *rand.Rand
	log     zerolog.Logger
}

// NewRandomizedGreedy returns a solver selecting size points with a
// restricted candidate list of rclSize. A nil rng uses the default
// deterministic stream.
//
// Errors: ErrBadSize, ErrBadRCL.
func NewRandomizedGreedy(size, rclSize int, rng *rand.Rand, opts ...Option) (*RandomizedGreedy, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if rclSize <= 0 {
		return nil, ErrBadRCL
	}
	s := newSettings(opts)

	return &RandomizedGreedy{size: size, rclSize: rclSize, rng: orDefault(rng), log: s.log}, nil
}

// Solve builds one randomized greedy solution.
//
// Errors: ErrNilInstance, ErrNotEnoughPoints.
//
// Complexity: O(m·rcl·n·d).
func (r *RandomizedGreedy) Solve(inst *instance.Instance) (Solution, error) {
	if err := validateFits(inst, r.size); err != nil {
		return Solution{}, err
	}

	var (
		available = allIndices(inst.Len())
		center    = centroidOf(inst, available)
		sol       = emptySolution(inst)
		rcl       []int
		k         int
	)
	for sol.Len() < r.size {
		rcl = farthestIndexes(pointsAt(inst, available), center, r.rclSize)
		k = rcl[r.rng.Intn(len(rcl))]
		sol = sol.with(available[k])
		available = removeAt(available, k)
		center = centroidOf(inst, sol.idx)
	}
	r.log.Debug().Int("size", r.size).Int("rcl", r.rclSize).Float64("z", sol.Z()).Msg("randomized greedy solution built")

	return sol, nil
}
