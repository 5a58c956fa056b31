package mdp

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/diversity/instance"
)

// Greedy is the deterministic constructive heuristic.
//
// Starting from the centroid of the whole instance, it repeatedly adds the
// unselected point farthest from the current centroid, then moves the
// centroid to the mean of the selected points only.
type Greedy struct {
	size int
	log  zerolog.Logger
}

// NewGreedy returns a Greedy solver selecting size points.
func NewGreedy(size int, opts ...Option) (*Greedy, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	s := newSettings(opts)

	return &Greedy{size: size, log: s.log}, nil
}

// Size returns the number of points the solver selects.
func (g *Greedy) Size() int { return g.size }

// Solve builds the greedy solution.
//
// Errors: ErrNilInstance, ErrNotEnoughPoints.
//
// Complexity: O(m·n·d).
func (g *Greedy) Solve(inst *instance.Instance) (Solution, error) {
	if err := validateFits(inst, g.size); err != nil {
		return Solution{}, err
	}

	var (
		available = allIndices(inst.Len())
		center    = centroidOf(inst, available)
		sol       = emptySolution(inst)
		k         int
	)
	for sol.Len() < g.size {
		k = farthest(pointsAt(inst, available), center)
		sol = sol.with(available[k])
		available = removeAt(available, k)
		center = centroidOf(inst, sol.idx)
	}
	g.log.Debug().Int("size", g.size).Float64("z", sol.Z()).Msg("greedy solution built")

	return sol, nil
}
