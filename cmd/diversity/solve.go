package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diversity/instance"
	"github.com/katalvlaran/diversity/logging"
	"github.com/katalvlaran/diversity/mdp"
)

type solveFlags struct {
	file      string
	algo      string
	seeder    string
	policy    string
	size      int
	rcl       int
	iter      int
	tenure    int
	inner     int
	seed      int64
	genPoints int
	genDim    int
}

func newSolveCmd() *cobra.Command {
	var (
		f    solveFlags
		defs = mdp.DefaultOptions()
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance and print z, the solution and the CPU time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := f.instance()
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			log := logging.Get()
			opts.Logger = &log

			solver, err := mdp.NewSolver(opts)
			if err != nil {
				return err
			}
			start := time.Now()
			sol, err := solver.Solve(inst)
			elapsed := time.Since(start)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "z=%.3f\n", sol.Z())
			fmt.Fprintf(out, "S=%s\n", sol)
			fmt.Fprintf(out, "CPU=%dus\n", elapsed.Microseconds())
			if bb, ok := solver.(*mdp.BranchAndBound); ok {
				fmt.Fprintf(out, "generated=%d\n", bb.GeneratedNodes())
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "instance file")
	fl.IntVar(&f.genPoints, "random-points", 0, "solve a generated instance of this many points instead of --file")
	fl.IntVar(&f.genDim, "random-dim", 2, "dimensionality of the generated instance")
	fl.StringVarP(&f.algo, "algo", "a", string(defs.Algorithm), "algorithm: greedy, randomized-greedy, grasp, tabu, bnb, deep-bnb")
	fl.IntVarP(&f.size, "size", "m", defs.Size, "number of points to select")
	fl.IntVar(&f.rcl, "rcl", defs.RCLSize, "restricted candidate list size")
	fl.IntVar(&f.iter, "iterations", defs.Iterations, "GRASP iterations or tabu starts")
	fl.IntVar(&f.tenure, "tenure", defs.Tenure, "tabu tenure")
	fl.IntVar(&f.inner, "inner", defs.InnerIterations, "non-improving tabu iterations per start")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (0 uses the default stream)")
	fl.StringVar(&f.seeder, "seeder", string(defs.Seeder), "heuristic seeding branch-and-bound")
	fl.StringVar(&f.policy, "policy", "", "branch-and-bound node order: smallest-bound, largest-bound, deepest")

	return cmd
}

func (f solveFlags) instance() (*instance.Instance, error) {
	switch {
	case f.file != "" && f.genPoints > 0:
		return nil, errors.New("--file and --random-points are mutually exclusive")
	case f.file != "":
		return instance.Load(f.file)
	case f.genPoints > 0:
		return instance.Random(f.genPoints, f.genDim, instance.WithSeed(f.seed))
	default:
		return nil, errors.New("one of --file or --random-points is required")
	}
}

func (f solveFlags) options() (mdp.Options, error) {
	opts := mdp.DefaultOptions()
	algo, err := mdp.ParseAlgorithm(f.algo)
	if err != nil {
		return opts, err
	}
	seeder, err := mdp.ParseAlgorithm(f.seeder)
	if err != nil {
		return opts, err
	}
	opts.Algorithm = algo
	opts.Seeder = seeder
	opts.Size = f.size
	opts.RCLSize = f.rcl
	opts.Iterations = f.iter
	opts.Tenure = f.tenure
	opts.InnerIterations = f.inner
	opts.Seed = f.seed
	if f.policy != "" {
		if opts.NodePolicy, err = mdp.ParseNodePolicy(f.policy); err != nil {
			return opts, err
		}
		opts.PolicySet = true
	}

	return opts, nil
}
