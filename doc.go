// Package twocycle is a toolkit for the two-cycle travelling salesman
// problem: split the vertices of a complete weighted graph into two disjoint
// Hamiltonian cycles of sizes ⌈n/2⌉ and ⌊n/2⌋ with minimal total length.
//
// What is inside?
//
//	distance/   — validated dense distance matrices and k-nearest candidate lists
//	solution/   — the two-cycle Solution, Partial (destroy/repair) and Move with O(1) deltas
//	construct/  — nearest-neighbour, greedy-cycle, regret-2 and weighted-regret builders
//	search/     — steepest local search over edge and inter-cycle exchanges
//	perturb/    — small (random moves) and large (destroy) perturbations
//	solver/     — MSLS, ILS, LNS, LNSa and the hybrid evolutionary algorithm (HAE)
//	experiment/ — seeded trial batches, statistics and the comparison suite
//	tune/       — Mayfly tuning of the weighted-regret weights
//	tsplib/     — TSPLIB EUC_2D/CEIL_2D instance reader
//	render/     — PNG plots of solutions and cost traces
//	config/     — TWOCYCLE_* environment configuration
//	server/     — HTTP run API with Prometheus metrics
//	cmd/twocycle — command-line front end (run, bench, tune, serve)
//
// Quick start:
//
//	in, _ := tsplib.Load("kroA100.tsp")
//	opts := solver.DefaultOptions()
//	opts.Algo = solver.HAE
//	res, _ := solver.Solve(in, opts)
//	fmt.Println(res.Cost, res.A, res.B)
//
// Every run is deterministic for a fixed Seed, up to wall-clock deadlines.
//
//	go install github.com/katalvlaran/twocycle/cmd/twocycle@latest
package twocycle
