// SPDX-License-Identifier: MIT

// Package solver - iterated local search and the shared initial solution.
package solver

import (
	"github.com/katalvlaran/twocycle/perturb"
	"github.com/katalvlaran/twocycle/solution"
)

// initial builds the first incumbent of ILS/LNS/LNSa according to
// opts.Initial and refines it with local search when refine is set.
func (e *engine) initial(refine bool) (*solution.Solution, int, error) {
	var (
		s   *solution.Solution
		err error
	)
	switch e.opts.Initial {
	case InitialWeightedRegret:
		s, err = e.regret.Build(e.d, e.rng)
	default:
		s, err = solution.Random(e.d.Len(), e.rng)
	}
	if err != nil {
		return nil, 0, err
	}
	if refine {
		return s, e.ls.Run(s).FinalCost, nil
	}

	return s, s.Cost(e.d), nil
}

// ils perturbs a clone of the incumbent with NMoves random moves, descends,
// and accepts the result iff it is strictly better.
func (e *engine) ils() (*solution.Solution, int, int, error) {
	best, bestCost, err := e.initial(true)
	if err != nil {
		return nil, 0, 0, err
	}

	var it int
	for it = 0; e.running(it); it++ {
		cand := best.Clone()
		if err = perturb.Small(cand, e.opts.NMoves, e.rng); err != nil {
			return nil, 0, it, err
		}
		cost := e.ls.Run(cand).FinalCost
		e.record(cost)
		if cost < bestCost {
			best, bestCost = cand, cost
			e.improved(cost, it)
		}
	}

	return best, bestCost, it, nil
}
