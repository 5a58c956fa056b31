package config

import "strconv"

// Default returns the sweep of the reference experiments: six instances of
// 15, 20 and 30 points in 2 and 3 dimensions, each run through greedy,
// GRASP, tabu search and greedy-seeded branch-and-bound for m = 2..5.
func Default() *Sweep {
	s := base()
	s.Seed = 1

	for _, k := range []int{2, 3} {
		for _, n := range []int{15, 20, 30} {
			s.Instances = append(s.Instances, Instance{
				Name: instanceName(n, k),
				Path: "problem_instances/" + instanceName(n, k) + ".txt",
				N:    n,
				K:    k,
			})
		}
	}

	sizes := []int{2, 3, 4, 5}
	s.Experiments = []Experiment{
		{
			Name:      "greedy",
			Algorithm: "greedy",
			Sizes:     sizes,
		},
		{
			Name:       "grasp",
			Algorithm:  "grasp",
			Instances:  []string{instanceName(15, 3), instanceName(20, 3), instanceName(30, 3)},
			Sizes:      sizes,
			Iterations: []int{10, 20},
			RCLSizes:   []int{2, 3},
		},
		{
			Name:            "tabu_search",
			Algorithm:       "tabu",
			Instances:       []string{instanceName(15, 2), instanceName(20, 2), instanceName(30, 2)},
			Sizes:           sizes,
			Iterations:      []int{10, 20},
			Tenures:         []int{2, 3},
			InnerIterations: 10,
		},
		{
			Name:      "branch_and_bound",
			Algorithm: "bnb",
			Sizes:     sizes,
			Seeder:    "greedy",
		},
	}

	return &s
}

func instanceName(n, k int) string {
	return "max_div_" + strconv.Itoa(n) + "_" + strconv.Itoa(k)
}
