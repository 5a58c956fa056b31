package mdp_test

import (
	"fmt"

	"github.com/katalvlaran/diversity/geom"
	"github.com/katalvlaran/diversity/instance"
	"github.com/katalvlaran/diversity/mdp"
)

// ExampleGreedy selects the two most diverse corners of a square.
func ExampleGreedy() {
	inst := instance.MustNew(
		geom.New(0, 0),
		geom.New(2, 0),
		geom.New(0, 2),
		geom.New(2, 2),
	)
	g, _ := mdp.NewGreedy(2)
	s, _ := g.Solve(inst)

	fmt.Println(s)
	fmt.Printf("z=%.3f\n", s.Z())
	// Output:
	// {0, 0}, {2, 2}
	// z=2.828
}

// ExampleBranchAndBound proves the greedy seed optimal on a line.
func ExampleBranchAndBound() {
	inst := instance.MustNew(
		geom.New(3), geom.New(0), geom.New(7), geom.New(1), geom.New(10),
	)
	seed, _ := mdp.NewGreedy(3)
	bb, _ := mdp.NewBranchAndBound(seed)
	s, _ := bb.Solve(inst)

	fmt.Printf("z=%.0f\n", s.Z())
	// Output:
	// z=20
}

// ExampleSolve runs GRASP through the dispatcher.
func ExampleSolve() {
	inst := instance.MustNew(
		geom.New(0, 0), geom.New(1, 0), geom.New(0, 1),
		geom.New(5, 5), geom.New(9, 0), geom.New(0, 9),
	)
	opts := mdp.DefaultOptions()
	opts.Algorithm = mdp.AlgoGRASP
	opts.Size = 3
	opts.Seed = 7

	s, _ := mdp.Solve(inst, opts)
	fmt.Printf("z=%.3f\n", s.Z())
}
