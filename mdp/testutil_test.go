// Package mdp_test holds helpers shared by the solver tests: small fixed
// instances, seeded random instances and a brute-force MDP oracle.
package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diversity/geom"
	"github.com/katalvlaran/diversity/instance"
	"github.com/katalvlaran/diversity/mdp"
)

const (
	// epsZ absorbs summation-order differences between z evaluations.
	epsZ = 1e-9

	// seedDet is the fixed seed used by randomized tests.
	seedDet = int64(42)
)

// squareInstance returns the corners (0,0),(2,0),(0,2),(2,2).
func squareInstance() *instance.Instance {
	return instance.MustNew(
		geom.New(0, 0),
		geom.New(2, 0),
		geom.New(0, 2),
		geom.New(2, 2),
	)
}

// randomInstance returns a reproducible instance of n points in d dimensions.
func randomInstance(t *testing.T, n, d int, seed int64) *instance.Instance {
	t.Helper()
	inst, err := instance.Random(n, d, instance.WithSeed(seed))
	require.NoError(t, err)

	return inst
}

// combinations calls fn with every ascending m-subset of 0..n-1.
// The slice passed to fn is reused between calls.
func combinations(n, m int, fn func(idx []int)) {
	idx := make([]int, m)
	var rec func(pos, from int)
	rec = func(pos, from int) {
		if pos == m {
			fn(idx)
			return
		}
		for i := from; i <= n-(m-pos); i++ {
			idx[pos] = i
			rec(pos+1, i+1)
		}
	}
	rec(0, 0)
}

// bruteForce returns the optimal z over all m-subsets of inst.
func bruteForce(t *testing.T, inst *instance.Instance, m int) float64 {
	t.Helper()
	var best float64
	combinations(inst.Len(), m, func(idx []int) {
		s, err := mdp.NewSolution(inst, idx...)
		require.NoError(t, err)
		if z := s.Z(); z > best {
			best = z
		}
	})

	return best
}

// requireValid asserts that s holds m distinct indices of inst.
func requireValid(t *testing.T, inst *instance.Instance, s mdp.Solution, m int) {
	t.Helper()
	require.Same(t, inst, s.Instance())
	require.Equal(t, m, s.Len())
	_, err := mdp.NewSolution(inst, s.Indices()...)
	require.NoError(t, err, "indices must be distinct and in range: %v", s.Indices())
}

// swapNeighbors returns every one-swap neighbor of s.
func swapNeighbors(t *testing.T, inst *instance.Instance, s mdp.Solution) []mdp.Solution {
	t.Helper()
	var (
		out []mdp.Solution
		idx = s.Indices()
	)
	for pos := range idx {
		for p := 0; p < inst.Len(); p++ {
			if s.Contains(p) {
				continue
			}
			next := make([]int, 0, len(idx))
			next = append(next, idx[:pos]...)
			next = append(next, idx[pos+1:]...)
			next = append(next, p)
			n, err := mdp.NewSolution(inst, next...)
			require.NoError(t, err)
			out = append(out, n)
		}
	}

	return out
}

// Repeat runs fn k times as numbered subtests.
func Repeat(t *testing.T, k int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < k; i++ {
		t.Run("run", fn)
	}
}
