package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diversity/geom"
	"github.com/katalvlaran/diversity/instance"
	"github.com/katalvlaran/diversity/mdp"
)

func TestSwap_PerformSearch_BestNeighbor(t *testing.T) {
	inst := randomInstance(t, 12, 2, seedDet)
	start, err := mdp.NewSolution(inst, 0, 1, 2, 3)
	require.NoError(t, err)

	got, err := mdp.NewSwap().PerformSearch(inst, start)
	require.NoError(t, err)
	requireValid(t, inst, got, 4)

	var best float64
	for _, nb := range swapNeighbors(t, inst, start) {
		if z := nb.Z(); z > best {
			best = z
		}
	}
	assert.InDelta(t, best, got.Z(), epsZ)
}

func TestSwap_PerformSearch_AppendsEnteringPoint(t *testing.T) {
	// (10,0) is the obvious entering point; it must land at the end.
	inst := instance.MustNew(
		geom.New(0, 0),
		geom.New(1, 0),
		geom.New(2, 0),
		geom.New(10, 0),
	)
	start, err := mdp.NewSolution(inst, 0, 1, 2)
	require.NoError(t, err)

	got, err := mdp.Swap{}.PerformSearch(inst, start)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, got.Indices())
	assert.InDelta(t, 22.0, got.Z(), epsZ)
}

// latticeInstance returns the k×k grid of points with spacing 1/k. Many
// swaps tie on z there, with sums that round differently.
func latticeInstance(k int) *instance.Instance {
	pts := make([]geom.Point, 0, k*k)
	for y := 0; y < k; y++ {
		for x := 0; x < k; x++ {
			pts = append(pts, geom.New(float64(x)/float64(k), float64(y)/float64(k)))
		}
	}

	return instance.MustNew(pts...)
}

// firstStrictlyBest scans the swap neighborhood in order and keeps the
// first candidate whose full Z is strictly greater than every earlier one.
func firstStrictlyBest(t *testing.T, inst *instance.Instance, s mdp.Solution) mdp.Solution {
	t.Helper()
	var (
		best  mdp.Solution
		bestZ float64
	)
	for k, nb := range swapNeighbors(t, inst, s) {
		if z := nb.Z(); k == 0 || z > bestZ {
			best, bestZ = nb, z
		}
	}

	return best
}

func TestSwap_PerformSearch_TiesKeepFirstFound(t *testing.T) {
	for k := 3; k <= 5; k++ {
		inst := latticeInstance(k)
		for m := 2; m <= 4; m++ {
			var mismatches int
			combinations(inst.Len(), m, func(idx []int) {
				start, err := mdp.NewSolution(inst, idx...)
				require.NoError(t, err)

				got, err := mdp.Swap{}.PerformSearch(inst, start)
				require.NoError(t, err)
				want := firstStrictlyBest(t, inst, start)
				if !assert.Equal(t, want.Indices(), got.Indices(), "k=%d start=%v", k, idx) {
					mismatches++
				}
			})
			require.Zero(t, mismatches, "k=%d m=%d", k, m)
		}
	}
}

func TestSwap_EmptyNeighborhood(t *testing.T) {
	inst := squareInstance()
	all, err := mdp.NewSolution(inst, 3, 1, 0, 2)
	require.NoError(t, err)

	got, err := mdp.Swap{}.PerformSearch(inst, all)
	require.NoError(t, err)
	assert.Equal(t, all.Indices(), got.Indices())
}

func TestSwap_ForeignSolution(t *testing.T) {
	other := squareInstance()
	s, err := mdp.NewSolution(other, 0, 1)
	require.NoError(t, err)

	_, err = mdp.Swap{}.PerformSearch(squareInstance(), s)
	assert.ErrorIs(t, err, mdp.ErrForeignSolution)

	_, err = mdp.Swap{}.PerformSearch(nil, s)
	assert.ErrorIs(t, err, mdp.ErrNilInstance)
}

func TestImprove_ReachesLocalOptimum(t *testing.T) {
	for _, seed := range []int64{1, 5, 9} {
		inst := randomInstance(t, 15, 3, seed)
		start, err := mdp.NewSolution(inst, 0, 1, 2, 3, 4)
		require.NoError(t, err)

		got, err := mdp.Improve(inst, mdp.Swap{}, start)
		require.NoError(t, err)
		requireValid(t, inst, got, 5)
		assert.GreaterOrEqual(t, got.Z(), start.Z())

		for _, nb := range swapNeighbors(t, inst, got) {
			assert.LessOrEqual(t, nb.Z(), got.Z()+epsZ, "seed=%d neighbor %v beats %v", seed, nb.Indices(), got.Indices())
		}
	}
}

// worseSearch always proposes a worse neighbor.
type worseSearch struct{ calls int }

func (w *worseSearch) PerformSearch(inst *instance.Instance, s mdp.Solution) (mdp.Solution, error) {
	w.calls++
	idx := s.Indices()
	return mdp.NewSolution(inst, idx[:len(idx)-1]...)
}

func TestImprove_RejectsNonImproving(t *testing.T) {
	inst := squareInstance()
	start, err := mdp.NewSolution(inst, 0, 3)
	require.NoError(t, err)

	ls := &worseSearch{}
	got, err := mdp.Improve(inst, ls, start)
	require.NoError(t, err)
	assert.Equal(t, start.Indices(), got.Indices())
	assert.Equal(t, 1, ls.calls)
}

func TestImprove_NilLocalSearch(t *testing.T) {
	_, err := mdp.Improve(squareInstance(), nil, mdp.Solution{})
	assert.ErrorIs(t, err, mdp.ErrNilLocalSearch)
}
