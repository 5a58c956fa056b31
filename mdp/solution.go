package mdp

import (
	"strings"

	"github.com/katalvlaran/diversity/geom"
	"github.com/katalvlaran/diversity/instance"
)

// Solution is a selection of distinct points of one instance, identified
// by their canonical indices. The order of selection is kept; it only
// affects String and the enumeration order of neighborhoods, never Z.
//
// Solution is an immutable value: every method that changes the
// selection returns a new Solution.
type Solution struct {
	inst *instance.Instance
	idx  []int
}

// NewSolution builds a solution of inst from canonical indices.
//
// Errors: ErrNilInstance, ErrBadIndex (out of range or repeated).
//
// Complexity: O(len(indices)).
func NewSolution(inst *instance.Instance, indices ...int) (Solution, error) {
	if inst == nil {
		return Solution{}, ErrNilInstance
	}
	seen := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= inst.Len() {
			return Solution{}, ErrBadIndex
		}
		if _, dup := seen[i]; dup {
			return Solution{}, ErrBadIndex
		}
		seen[i] = struct{}{}
	}
	idx := make([]int, len(indices))
	copy(idx, indices)

	return Solution{inst: inst, idx: idx}, nil
}

// emptySolution returns the empty selection of inst.
func emptySolution(inst *instance.Instance) Solution {
	return Solution{inst: inst}
}

// Instance returns the instance s was drawn from (nil for the zero value).
func (s Solution) Instance() *instance.Instance { return s.inst }

// Len returns the number of selected points.
func (s Solution) Len() int { return len(s.idx) }

// Indices returns a copy of the selected canonical indices in selection order.
func (s Solution) Indices() []int {
	out := make([]int, len(s.idx))
	copy(out, s.idx)

	return out
}

// Points returns the selected points in selection order.
func (s Solution) Points() []geom.Point {
	out := make([]geom.Point, len(s.idx))
	for k, i := range s.idx {
		out[k] = s.inst.Point(i)
	}

	return out
}

// Contains reports whether canonical index i is selected.
//
// Complexity: O(m).
func (s Solution) Contains(i int) bool {
	for _, j := range s.idx {
		if j == i {
			return true
		}
	}

	return false
}

// Z returns the diversity of s: the sum of distances over all unordered
// pairs of selected points.
//
// Complexity: O(m²).
func (s Solution) Z() float64 {
	return sumPairs(s.inst, s.idx)
}

// String renders s as brace-delimited coordinate groups,
// e.g. "{0, 0}, {2, 2}".
func (s Solution) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for k, i := range s.idx {
		if k > 0 {
			sb.WriteString("}, {")
		}
		sb.WriteString(s.inst.Point(i).String())
	}
	sb.WriteByte('}')

	return sb.String()
}

// with returns a copy of s with index i appended.
func (s Solution) with(i int) Solution {
	idx := make([]int, len(s.idx), len(s.idx)+1)
	copy(idx, s.idx)

	return Solution{inst: s.inst, idx: append(idx, i)}
}

// swapped returns a copy of s with the point at position pos removed and
// index in appended.
func (s Solution) swapped(pos, in int) Solution {
	idx := make([]int, 0, len(s.idx))
	idx = append(idx, s.idx[:pos]...)
	idx = append(idx, s.idx[pos+1:]...)

	return Solution{inst: s.inst, idx: append(idx, in)}
}

// membership returns a boolean mask over the instance marking selected points.
func (s Solution) membership() []bool {
	in := make([]bool, s.inst.Len())
	for _, i := range s.idx {
		in[i] = true
	}

	return in
}

// sumPairs returns the sum of distances over all unordered pairs of idx.
func sumPairs(inst *instance.Instance, idx []int) float64 {
	var (
		total float64
		a, b  int
	)
	for a = 0; a < len(idx); a++ {
		for b = a + 1; b < len(idx); b++ {
			total += inst.Distance(idx[a], idx[b])
		}
	}

	return total
}
