// Package diversity is a toolkit for the Maximum Diversity Problem: pick m
// of n points in a d-dimensional space so that the sum of pairwise
// Euclidean distances among the picked points is as large as possible.
//
// What is inside:
//
//   - Constructive heuristics: Greedy and RandomizedGreedy (farthest from
//     the running centroid, optionally from a restricted candidate list)
//   - Local search: best-improvement one-point Swap and a generic Improve loop
//   - Metaheuristics: GRASP and multistart TabuSearch with aspiration
//   - Exact search: BranchAndBound with an admissible upper bound and
//     selectable node order (smallest bound, largest bound, deepest)
//   - Benchmarking: YAML parameter sweeps, Markdown/CSV reports and
//     Prometheus textfile metrics
//
// Packages:
//
//	geom/          - Point, Euclidean distance, centroid
//	instance/      - Instance with cached distance matrix, text loader/writer, generator
//	mdp/           - Solution, every solver, the Options dispatcher
//	config/        - benchmark sweep files (YAML + validation)
//	bench/         - sweep runner, statistics, reports, metrics
//	logging/       - process-wide zerolog logger
//	cmd/diversity/ - command line: solve, bench, generate
//
// Quick example:
//
//	inst, _ := instance.Load("points.txt")
//	sol, _ := mdp.Solve(inst, mdp.Options{Algorithm: mdp.AlgoGreedy, Size: 5})
//	fmt.Println(sol.Z(), sol)
package diversity
