// SPDX-License-Identifier: MIT

// Package solver runs the two-cycle metaheuristics on a distance matrix.
//
// Drivers (closed Algo enumeration):
//   - MSLS: Iterations independent random starts refined by local search;
//     the best local optimum wins.
//   - ILS: clone the incumbent, apply NMoves random moves, local search,
//     accept iff strictly better; until the time limit.
//   - LNS: clone the incumbent, destroy DestroyFraction of the vertices,
//     weighted-regret repair, local search, accept iff strictly better.
//   - LNSa: LNS without local search after repair; the first solution is
//     refined only when it was generated at random.
//   - HAE: steady-state hybrid evolution. A diverse elitist population of
//     local optima, edge-preserving recombination, weighted-regret repair,
//     optional local search and a MinDiff diversity gate.
//
// Entry point:
//
//	res, err := solver.Solve(matrix, opts)
//
// Solve flattens and validates the instance, validates Options, builds the
// candidate lists and dispatches. Invalid input is fatal and reported before
// any driver starts.
//
// Time & determinism:
//
//	Timed drivers compare time.Since(start) against TimeLimit at the head of
//	every iteration; a started iteration always completes. All randomness
//	flows from Options.Seed (seed 0 maps to a fixed default). MaxIterations
//	caps timed drivers so that identical seeds give identical results
//	regardless of machine speed.
//
// Concurrency:
//
//	One run is single-threaded except for HAE with Workers > 1, which evaluates
//	a batch of children concurrently with per-child generators derived from
//	(Seed, child index) and applies replacements serially in child order.
package solver
