package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diversity/mdp"
)

func TestGRASP_LocalOptimumAndDeterminism(t *testing.T) {
	inst := randomInstance(t, 20, 2, seedDet)
	run := func() mdp.Solution {
		g, err := mdp.NewGRASP(5, 3, mdp.Swap{}, 10, mdp.RNGFromSeed(seedDet))
		require.NoError(t, err)
		s, err := g.Solve(inst)
		require.NoError(t, err)
		return s
	}

	a := run()
	requireValid(t, inst, a, 5)
	for _, nb := range swapNeighbors(t, inst, a) {
		assert.LessOrEqual(t, nb.Z(), a.Z()+epsZ)
	}
	assert.Equal(t, a.Indices(), run().Indices())
}

func TestGRASP_AtLeastGreedyImproved(t *testing.T) {
	// With an RCL of 1 every construction is the greedy solution, so GRASP
	// returns exactly the improved greedy solution.
	inst := randomInstance(t, 18, 2, 3)
	gr, err := mdp.NewGreedy(4)
	require.NoError(t, err)
	start, err := gr.Solve(inst)
	require.NoError(t, err)
	want, err := mdp.Improve(inst, mdp.Swap{}, start)
	require.NoError(t, err)

	g, err := mdp.NewGRASP(4, 1, mdp.Swap{}, 3, nil)
	require.NoError(t, err)
	got, err := g.Solve(inst)
	require.NoError(t, err)
	assert.Equal(t, want.Indices(), got.Indices())
}

func TestGRASP_Errors(t *testing.T) {
	_, err := mdp.NewGRASP(0, 2, mdp.Swap{}, 1, nil)
	assert.ErrorIs(t, err, mdp.ErrBadSize)
	_, err = mdp.NewGRASP(2, 0, mdp.Swap{}, 1, nil)
	assert.ErrorIs(t, err, mdp.ErrBadRCL)
	_, err = mdp.NewGRASP(2, 2, nil, 1, nil)
	assert.ErrorIs(t, err, mdp.ErrNilLocalSearch)
	_, err = mdp.NewGRASP(2, 2, mdp.Swap{}, 0, nil)
	assert.ErrorIs(t, err, mdp.ErrBadIterations)

	g, err := mdp.NewGRASP(2, 2, mdp.Swap{}, 1, nil)
	require.NoError(t, err)
	_, err = g.Solve(nil)
	assert.ErrorIs(t, err, mdp.ErrNilInstance)
}
