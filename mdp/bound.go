// Package mdp - admissible upper bound for branch-and-bound nodes.
//
// For a node whose chosen set C still needs r more points:
//
//	UB(C) = z(C) + Σ (r largest point bounds)
//	pb(p) = Σ_{c∈C} d(p, c) + ½ · Σ (r−1 largest d(p, q), q ∉ C, q ≠ p)
//
// Every completion adds r points; the gain of each added point p is its
// distance to C plus its share of the distances to the other r−1 added
// points. Each pairwise distance among added points is split evenly
// between its endpoints, so pb(p) overestimates that share, and the sum of
// the r largest pb values overestimates the whole gain. Hence UB never
// underestimates the best completion.
//
// Complexity: O(n² log n) per node.
package mdp

import (
	"slices"

	"github.com/katalvlaran/diversity/instance"
)

// boundScratch holds buffers reused across bound evaluations of one search.
type boundScratch struct {
	in     []bool
	dists  []float64
	points []float64
}

func newBoundScratch(n int) *boundScratch {
	return &boundScratch{
		in:     make([]bool, n),
		dists:  make([]float64, 0, n),
		points: make([]float64, 0, n),
	}
}

// upperBound returns the admissible bound of the node with chosen indices
// when remaining more points must be added. With remaining == 0 it is the
// exact z of chosen.
func upperBound(inst *instance.Instance, chosen []int, remaining int, sc *boundScratch) float64 {
	var total = sumPairs(inst, chosen)
	if remaining == 0 {
		return total
	}

	var (
		n    = inst.Len()
		p, q int
	)
	for p = range sc.in {
		sc.in[p] = false
	}
	for _, c := range chosen {
		sc.in[c] = true
	}

	sc.points = sc.points[:0]
	for p = 0; p < n; p++ {
		if sc.in[p] {
			continue
		}
		var pb float64
		for _, c := range chosen {
			pb += inst.Distance(p, c)
		}
		if remaining > 1 {
			sc.dists = sc.dists[:0]
			for q = 0; q < n; q++ {
				if q != p && !sc.in[q] {
					sc.dists = append(sc.dists, inst.Distance(p, q))
				}
			}
			pb += sumLargest(sc.dists, remaining-1) / 2
		}
		sc.points = append(sc.points, pb)
	}

	return total + sumLargest(sc.points, remaining)
}

// sumLargest sorts vals in place and returns the sum of its k largest
// elements, added in descending order. k is clamped to len(vals).
func sumLargest(vals []float64, k int) float64 {
	if k > len(vals) {
		k = len(vals)
	}
	slices.Sort(vals)

	var sum float64
	for i := len(vals) - 1; i >= len(vals)-k; i-- {
		sum += vals[i]
	}

	return sum
}
