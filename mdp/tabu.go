// Package mdp - tabu search.
//
// Outer loop: multistart. Each start is seeded with one GRASP pass
// (RCL of 2, one construction, one Swap descent) drawing from its own
// stream derived from the solver's generator, and refined by the inner
// search; the strictly best result over all starts wins.
//
// Inner loop: runs until innerIterations consecutive iterations pass
// without improving the best-known z. Each iteration:
//  1. if the tabu queue holds more than tenure entries, drop the oldest;
//  2. A = best swap whose entering point is not tabu;
//  3. B = best swap whose entering point is tabu (may not exist);
//  4. aspiration: if z(B) > best and z(B) > z(A), move to B, record it as
//     the new best, reset the stall counter, push B's entering point;
//  5. otherwise move to A, updating the best and the stall counter;
//  6. push A's entering point.
//
// Only entering points are tabu; leaving points are always allowed to go.
package mdp

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/diversity/instance"
)

// seedRCLSize is the RCL size of the GRASP pass seeding every start.
const seedRCLSize = 2

// TabuSearch is a multistart tabu search over the swap neighborhood.
type TabuSearch struct {
	size            int
	tenure          int
	iterations      int
	innerIterations int
	rng             *rand.Rand
	cfg             settings
}

// NewTabuSearch returns a tabu search selecting size points.
// iterations is the number of starts; innerIterations is the number of
// consecutive non-improving iterations that ends a start. A nil rng uses
// the default deterministic stream.
//
// Errors: ErrBadSize, ErrBadTenure, ErrBadIterations.
func NewTabuSearch(size, tenure, iterations, innerIterations int, rng *rand.Rand, opts ...Option) (*TabuSearch, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if tenure <= 0 {
		return nil, ErrBadTenure
	}
	if iterations <= 0 || innerIterations <= 0 {
		return nil, ErrBadIterations
	}

	return &TabuSearch{
		size:            size,
		tenure:          tenure,
		iterations:      iterations,
		innerIterations: innerIterations,
		rng:             orDefault(rng),
		cfg:             newSettings(opts),
	}, nil
}

// Solve runs every start and returns the best solution found.
//
// Errors: ErrNilInstance, ErrTenureTooLarge (size+tenure ≥ n).
func (t *TabuSearch) Solve(inst *instance.Instance) (Solution, error) {
	if inst == nil {
		return Solution{}, ErrNilInstance
	}
	if t.size+t.tenure >= inst.Len() {
		return Solution{}, fmt.Errorf("size %d + tenure %d with %d points: %w", t.size, t.tenure, inst.Len(), ErrTenureTooLarge)
	}

	var (
		best  Solution
		bestZ float64
	)
	for it := 0; it < t.iterations; it++ {
		seeder, err := NewGRASP(t.size, seedRCLSize, Swap{}, 1, DeriveRNG(t.rng, uint64(it)))
		if err != nil {
			return Solution{}, err
		}
		start, err := seeder.Solve(inst)
		if err != nil {
			return Solution{}, err
		}
		sol := t.search(inst, start)
		if z := sol.Z(); it == 0 || z > bestZ {
			best, bestZ = sol, z
			t.cfg.log.Debug().Int("start", it).Float64("z", z).Msg("tabu search improved best")
		}
	}

	return best, nil
}

// tabuState is the working memory of one start of the inner search.
type tabuState struct {
	cur   Solution
	best  Solution
	bestZ float64
	queue *tabuQueue
	stall int
}

func newTabuState(start Solution, tenure int) *tabuState {
	return &tabuState{
		cur:   start,
		best:  start,
		bestZ: start.Z(),
		queue: newTabuQueue(tenure + 1),
	}
}

// search runs the inner tabu descent from start.
func (t *TabuSearch) search(inst *instance.Instance, start Solution) Solution {
	st := newTabuState(start, t.tenure)
	for iter := 1; st.stall < t.innerIterations; iter++ {
		if !t.step(inst, st, iter) {
			// No admissible move; unreachable while size+tenure < n.
			break
		}
	}

	return st.best
}

// step performs one inner iteration on st. It reports false when every
// entering point is tabu, leaving st untouched apart from the queue pop.
func (t *TabuSearch) step(inst *instance.Instance, st *tabuState, iter int) bool {
	if st.queue.Len() > t.tenure {
		st.queue.Pop()
	}

	notTabu := func(p int) bool { return !st.queue.Contains(p) }
	a, aIn, ok := bestSwap(inst, st.cur, notTabu)
	if !ok {
		return false
	}
	aZ := a.Z()

	if b, bIn, tabuOK := bestSwap(inst, st.cur, st.queue.Contains); tabuOK {
		if bZ := b.Z(); bZ > st.bestZ && bZ > aZ {
			st.best, st.bestZ, st.cur = b, bZ, b
			st.queue.Push(bIn)
			st.stall = 0
			t.cfg.log.Debug().Int("iteration", iter).Int("entering", bIn).Float64("z", bZ).Msg("aspiration overrides tabu")
			t.observe(iter, st.bestZ)

			return true
		}
	}

	if aZ > st.bestZ {
		st.best, st.bestZ = a, aZ
		st.stall = 0
	} else {
		st.stall++
	}
	st.cur = a
	st.queue.Push(aIn)
	t.observe(iter, st.bestZ)

	return true
}

func (t *TabuSearch) observe(iter int, bestZ float64) {
	if t.cfg.observer != nil {
		t.cfg.observer(iter, bestZ)
	}
}

// tabuQueue is a FIFO of point indices with O(1) membership.
// A point may be queued more than once; it stays tabu until its last
// occurrence leaves the queue.
type tabuQueue struct {
	items []int
	count map[int]int
}

func newTabuQueue(capacity int) *tabuQueue {
	return &tabuQueue{
		items: make([]int, 0, capacity),
		count: make(map[int]int, capacity),
	}
}

// Len returns the number of queued entries.
func (q *tabuQueue) Len() int { return len(q.items) }

// Contains reports whether p is tabu.
func (q *tabuQueue) Contains(p int) bool { return q.count[p] > 0 }

// Push appends p as the newest entry.
func (q *tabuQueue) Push(p int) {
	q.items = append(q.items, p)
	q.count[p]++
}

// Pop removes the oldest entry. It is a no-op on an empty queue.
func (q *tabuQueue) Pop() {
	if len(q.items) == 0 {
		return
	}
	p := q.items[0]
	q.items = q.items[1:]
	if q.count[p]--; q.count[p] == 0 {
		delete(q.count, p)
	}
}
