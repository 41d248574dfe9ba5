// SPDX-License-Identifier: MIT

// Package solver - multi-start local search.
package solver

import "github.com/katalvlaran/twocycle/solution"

// msls runs Iterations independent random starts through local search and
// keeps the best local optimum (first one wins on equal cost).
//
// Complexity: Iterations × (one local-search run).
func (e *engine) msls() (*solution.Solution, int, int, error) {
	var (
		best     *solution.Solution
		bestCost int
		it       int
	)
	for it = 0; it < e.opts.Iterations; it++ {
		s, cost, err := e.randomLocalOptimum(e.rng)
		if err != nil {
			return nil, 0, it, err
		}
		e.record(cost)
		if best == nil || cost < bestCost {
			best, bestCost = s, cost
			e.improved(cost, it)
		}
	}

	return best, bestCost, it, nil
}
