package mdp

import (
	"github.com/katalvlaran/diversity/geom"
	"github.com/katalvlaran/diversity/instance"
)

// centroidOf returns the centroid of the points at the given indices.
// idx must be non-empty; instance points share one dimensionality.
func centroidOf(inst *instance.Instance, idx []int) geom.Point {
	pts := make([]geom.Point, len(idx))
	for k, i := range idx {
		pts[k] = inst.Point(i)
	}
	c, err := geom.Centroid(pts...)
	if err != nil {
		// Unreachable for a valid instance and a non-empty index list.
		panic(err)
	}

	return c
}

// allIndices returns 0..n-1.
func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// farthest returns the position in candidates of the point farthest from
// center. Ties keep the first point found: only a strictly greater distance
// replaces the running choice. candidates must be non-empty.
//
// Complexity: O(len(candidates)·d).
func farthest(candidates []geom.Point, center geom.Point) int {
	var (
		best  = 0
		bestD = candidates[0].Distance(center)
		d     float64
	)
	for k := 1; k < len(candidates); k++ {
		if d = candidates[k].Distance(center); d > bestD {
			best, bestD = k, d
		}
	}

	return best
}

// farthestIndexes returns the positions of the k points of candidates
// farthest from center, in extraction order, selected by repeated
// remove-max with the same first-found tie-break as farthest.
// At most len(candidates) positions are returned.
//
// Complexity: O(k·len(candidates)·d).
func farthestIndexes(candidates []geom.Point, center geom.Point, k int) []int {
	if k > len(candidates) {
		k = len(candidates)
	}
	var (
		taken = make([]bool, len(candidates))
		dist  = make([]float64, len(candidates))
		out   = make([]int, 0, k)
		j     int
	)
	for j = range candidates {
		dist[j] = candidates[j].Distance(center)
	}
	for len(out) < k {
		best := -1
		for j = range candidates {
			if taken[j] {
				continue
			}
			if best < 0 || dist[j] > dist[best] {
				best = j
			}
		}
		taken[best] = true
		out = append(out, best)
	}

	return out
}

// pointsAt resolves canonical indices to points.
func pointsAt(inst *instance.Instance, idx []int) []geom.Point {
	pts := make([]geom.Point, len(idx))
	for k, i := range idx {
		pts[k] = inst.Point(i)
	}

	return pts
}

// removeAt deletes position k from s, preserving order.
func removeAt(s []int, k int) []int {
	return append(s[:k], s[k+1:]...)
}
