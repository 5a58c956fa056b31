// Package mdp - one-point swap neighborhood and the generic improvement loop.
//
// Neighborhood of a solution S (size m) over an instance of n points:
// every pair (position i in S, point p ∉ S) yields the candidate obtained
// by removing S[i] and appending p. There are m·(n−m) candidates.
//
// Candidates are evaluated incrementally. With contrib[i] = Σ_j d(S[i], S[j])
// and toSel[p] = Σ_j d(p, S[j]):
//
//	z(S − S[i] + p) = z(S) − contrib[i] + toSel[p] − d(p, S[i])
//
// The incremental value only prunes: a candidate that cannot reach the
// running best is skipped in O(1). Survivors are ranked on the full z of
// the swapped index list, the same value Z() reports, so rounding in the
// incremental formula never decides a tie.
package mdp

import (
	"math"

	"github.com/katalvlaran/diversity/instance"
)

// Swap is the best-improvement one-point swap local search.
type Swap struct{}

// NewSwap returns a Swap local search.
func NewSwap() Swap { return Swap{} }

// PerformSearch scans the whole swap neighborhood of s and returns its best
// candidate (first found among equals). When the neighborhood is empty
// (every point is selected) s itself is returned.
//
// Errors: ErrNilInstance, ErrForeignSolution.
//
// Complexity: O(m·n) to prune plus O(m²) per surviving candidate.
func (Swap) PerformSearch(inst *instance.Instance, s Solution) (Solution, error) {
	if err := validateOwned(inst, s); err != nil {
		return Solution{}, err
	}
	s.inst = inst
	best, _, ok := bestSwap(inst, s, nil)
	if !ok {
		return s, nil
	}

	return best, nil
}

// Improve repeatedly applies ls to s and accepts a neighbor only when its
// z is strictly greater than the current one. It returns the last accepted
// solution: a local optimum of the neighborhood explored by ls.
//
// Termination: z strictly increases at every accepted step and the set of
// solutions is finite.
func Improve(inst *instance.Instance, ls LocalSearch, s Solution) (Solution, error) {
	if ls == nil {
		return Solution{}, ErrNilLocalSearch
	}
	var (
		cur  = s
		curZ = s.Z()
	)
	for {
		next, err := ls.PerformSearch(inst, cur)
		if err != nil {
			return Solution{}, err
		}
		nextZ := next.Z()
		if nextZ <= curZ {
			return cur, nil
		}
		cur, curZ = next, nextZ
	}
}

// bestSwap returns the best swap neighbor of s whose entering point is
// accepted by allow (nil allows every point), together with the entering
// index. ok is false when no admissible move exists.
//
// Scan order: positions of s ascending, then entering points in instance
// order; only a strictly greater full z replaces the running best.
func bestSwap(inst *instance.Instance, s Solution, allow func(p int) bool) (best Solution, entering int, ok bool) {
	var (
		n       = inst.Len()
		m       = len(s.idx)
		in      = s.membership()
		contrib = make([]float64, m)
		toSel   = make([]float64, n)
		z       = s.Z()
		i, j, p int
	)
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			if i != j {
				contrib[i] += inst.Distance(s.idx[i], s.idx[j])
			}
		}
	}
	for p = 0; p < n; p++ {
		if in[p] {
			continue
		}
		for j = 0; j < m; j++ {
			toSel[p] += inst.Distance(p, s.idx[j])
		}
	}

	var (
		bestPos = -1
		bestIn  = -1
		bestZ   float64
		cand    float64
		full    float64
		buf     = make([]int, m)
	)
	for i = 0; i < m; i++ {
		for p = 0; p < n; p++ {
			if in[p] || (allow != nil && !allow(p)) {
				continue
			}
			cand = z - contrib[i] + toSel[p] - inst.Distance(p, s.idx[i])
			if bestPos >= 0 && cand < bestZ-pruneSlack(bestZ) {
				continue
			}
			full = sumPairs(inst, swapInto(buf, s.idx, i, p))
			if bestPos < 0 || full > bestZ {
				bestPos, bestIn, bestZ = i, p, full
			}
		}
	}
	if bestPos < 0 {
		return Solution{}, -1, false
	}

	return s.swapped(bestPos, bestIn), bestIn, true
}

// pruneSlack bounds the rounding gap between the incremental and the full
// z of a candidate.
func pruneSlack(z float64) float64 {
	return 1e-9 * (1 + math.Abs(z))
}

// swapInto writes idx without position pos and with in appended into buf,
// matching the order of Solution.swapped.
func swapInto(buf, idx []int, pos, in int) []int {
	buf = buf[:0]
	buf = append(buf, idx[:pos]...)
	buf = append(buf, idx[pos+1:]...)

	return append(buf, in)
}
