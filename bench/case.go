// Package bench runs parameter sweeps of the mdp solvers and reports them.
//
// A sweep (config.Sweep) expands into Cases: one per experiment, instance,
// size and parameter combination, in that nesting order. A Runner repeats
// every Case with per-run derived seeds, times each Solve call, and
// aggregates z and CPU time into a Summary. Summaries are rendered as
// Markdown tables in the layout of the reference reports or as CSV, and
// every run can be counted in a private Prometheus registry.
package bench

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/diversity/config"
	"github.com/katalvlaran/diversity/instance"
	"github.com/katalvlaran/diversity/mdp"
)

// Case is one row of a report: an experiment applied to an instance with
// one concrete parameter combination.
type Case struct {
	Experiment string
	Instance   config.Instance
	Options    mdp.Options
}

// Expand turns a sweep into its ordered list of cases.
func Expand(s *config.Sweep) ([]Case, error) {
	var cases []Case
	for _, e := range s.Experiments {
		base, err := baseOptions(e)
		if err != nil {
			return nil, fmt.Errorf("experiment %q: %w", e.Name, err)
		}
		for _, inst := range s.InstancesFor(e) {
			for _, m := range e.Sizes {
				for _, it := range orZero(e.Iterations) {
					for _, rcl := range orZero(e.RCLSizes) {
						for _, tenure := range orZero(e.Tenures) {
							opts := base
							opts.Size = m
							if it > 0 {
								opts.Iterations = it
							}
							if rcl > 0 {
								opts.RCLSize = rcl
							}
							if tenure > 0 {
								opts.Tenure = tenure
							}
							cases = append(cases, Case{Experiment: e.Name, Instance: inst, Options: opts})
						}
					}
				}
			}
		}
	}

	return cases, nil
}

func baseOptions(e config.Experiment) (mdp.Options, error) {
	opts := mdp.DefaultOptions()
	algo, err := mdp.ParseAlgorithm(e.Algorithm)
	if err != nil {
		return opts, err
	}
	opts.Algorithm = algo
	if e.InnerIterations > 0 {
		opts.InnerIterations = e.InnerIterations
	}
	if e.Seeder != "" {
		if opts.Seeder, err = mdp.ParseAlgorithm(e.Seeder); err != nil {
			return opts, err
		}
	}
	if e.NodePolicy != "" {
		if opts.NodePolicy, err = mdp.ParseNodePolicy(e.NodePolicy); err != nil {
			return opts, err
		}
		opts.PolicySet = true
	}

	return opts, nil
}

// orZero returns vals, or a single zero meaning "keep the default".
func orZero(vals []int) []int {
	if len(vals) == 0 {
		return []int{0}
	}

	return vals
}

// Open resolves a sweep instance. A relative Path is read from dir;
// a Generate block is synthesized deterministically.
func Open(ci config.Instance, dir string) (*instance.Instance, error) {
	if ci.Path != "" {
		path := ci.Path
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		return instance.Load(path)
	}
	if ci.Generate == nil {
		return nil, fmt.Errorf("instance %q: no path and no generator", ci.Name)
	}
	g := ci.Generate

	return instance.Random(g.Points, g.Dim, instance.WithSeed(g.Seed), instance.WithRange(g.Min, g.Max))
}
