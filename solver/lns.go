// SPDX-License-Identifier: MIT

// Package solver - large neighbourhood search (LNS and LNSa).
package solver

import (
	"github.com/katalvlaran/twocycle/perturb"
	"github.com/katalvlaran/twocycle/solution"
)

// lns destroys DestroyFraction of a clone of the incumbent, repairs it with
// weighted regret, optionally descends (withLocal), and accepts the result
// iff it is strictly better.
//
// Without local search the first solution is refined only when it was drawn
// at random; a weighted-regret start is kept as constructed.
func (e *engine) lns(withLocal bool) (*solution.Solution, int, int, error) {
	best, bestCost, err := e.initial(withLocal || e.opts.Initial == InitialRandom)
	if err != nil {
		return nil, 0, 0, err
	}

	var it int
	for it = 0; e.running(it); it++ {
		cand, cost, err := e.destroyRepair(best, withLocal)
		if err != nil {
			return nil, 0, it, err
		}
		e.record(cost)
		if cost < bestCost {
			best, bestCost = cand, cost
			e.improved(cost, it)
		}
	}

	return best, bestCost, it, nil
}

// destroyRepair returns a repaired (and optionally refined) neighbour of s.
func (e *engine) destroyRepair(s *solution.Solution, withLocal bool) (*solution.Solution, int, error) {
	p, _, err := perturb.Large(s.Clone(), e.opts.DestroyFraction, e.rng)
	if err != nil {
		return nil, 0, err
	}
	if _, err = e.regret.Repair(p, e.d); err != nil {
		return nil, 0, err
	}
	cand, err := p.Complete()
	if err != nil {
		return nil, 0, err
	}
	if withLocal {
		return cand, e.ls.Run(cand).FinalCost, nil
	}

	return cand, cand.Cost(e.d), nil
}
