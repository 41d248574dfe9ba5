// SPDX-License-Identifier: MIT

// Package solver - hybrid evolutionary algorithm (HAE / HAE+LS).
//
// Generation:
//  1. sample two distinct parents uniformly;
//  2. recombine: start from parent 1 and free both endpoints of every edge
//     absent from parent 2, plus ⌊DestroyFraction·n⌋ uniformly random vertices;
//  3. repair with weighted regret;
//  4. refine with local search when WithLocal is set;
//  5. offer the child to the population (MinDiff gate, replace worst iff
//     strictly better) and update the global best for eligible children.
package solver

import (
	"cmp"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/twocycle/perturb"
	"github.com/katalvlaran/twocycle/solution"
)

// initAttemptsPerSlot bounds the search for well separated members to
// initAttemptsPerSlot·PopSize random local optima.
const initAttemptsPerSlot = 10

// hae runs the steady-state evolutionary loop until the time limit.
func (e *engine) hae() (*solution.Solution, int, int, error) {
	pop, err := e.initPopulation()
	if err != nil {
		return nil, 0, 0, err
	}
	top := pop.best()
	best, bestCost := top.s, top.cost

	workers := e.opts.Workers
	if workers < 1 {
		workers = 1
	}

	var gen int
	for e.running(gen) {
		batch := 1
		if workers > 1 {
			batch = workers
			if e.opts.MaxIterations > 0 {
				batch = min(batch, e.opts.MaxIterations-gen)
			}
		}
		children, err := e.breed(pop, gen, batch)
		if err != nil {
			return nil, 0, gen, err
		}
		for i, child := range children {
			e.record(child.cost)
			eligible, _ := pop.offer(child.s, child.cost)
			if eligible && child.cost < bestCost {
				best, bestCost = child.s, child.cost
				e.improved(bestCost, gen+i)
			}
		}
		gen += batch
	}
	e.population = pop.costs()

	return best, bestCost, gen, nil
}

// initPopulation fills PopSize slots with random local optima. Optima whose
// costs keep MinDiff from every member are taken first. When the attempt
// budget runs out, the cheapest rejected optima fill the remaining slots and
// the offer gate restores separation as the run replaces them.
func (e *engine) initPopulation() (*population, error) {
	var (
		pop      = &population{minDiff: e.opts.MinDiff}
		limit    = initAttemptsPerSlot * e.opts.PopSize
		rejected []member
		attempts int
	)
	for len(pop.members) < e.opts.PopSize && attempts < limit {
		attempts++
		s, cost, err := e.randomLocalOptimum(e.rng)
		if err != nil {
			return nil, err
		}
		if pop.admits(cost) {
			pop.add(s, cost)
			continue
		}
		rejected = append(rejected, member{s: s, cost: cost})
	}

	crowded := e.opts.PopSize - len(pop.members)
	if crowded > 0 {
		slices.SortStableFunc(rejected, func(a, b member) int { return cmp.Compare(a.cost, b.cost) })
		for _, m := range rejected[:crowded] {
			pop.add(m.s, m.cost)
		}
	}
	e.log.Debug("population ready",
		slog.Int("size", e.opts.PopSize),
		slog.Int("attempts", attempts),
		slog.Int("crowded", crowded),
	)

	return pop, nil
}

// breed produces batch children from a snapshot of the population. A single
// child uses the run generator; larger batches run on a bounded goroutine
// pool, child i drawing from the stream derived from (Seed, gen+i).
func (e *engine) breed(pop *population, gen, batch int) ([]member, error) {
	if batch == 1 {
		s, cost, err := e.offspring(pop.members, e.rng)
		if err != nil {
			return nil, err
		}
		return []member{{s: s, cost: cost}}, nil
	}

	var (
		snapshot = slices.Clone(pop.members)
		children = make([]member, batch)
		p        = pool.New().WithErrors().WithMaxGoroutines(batch)
	)
	for i := 0; i < batch; i++ {
		rng := deriveRNG(e.opts.Seed, uint64(gen+i))
		p.Go(func() error {
			s, cost, err := e.offspring(snapshot, rng)
			if err != nil {
				return err
			}
			children[i] = member{s: s, cost: cost}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return children, nil
}

// offspring recombines two distinct parents of members, repairs the child
// and optionally refines it. members and their solutions are only read.
func (e *engine) offspring(members []member, rng *rand.Rand) (*solution.Solution, int, error) {
	i, j := sampleTwo(len(members), rng)
	p, err := e.recombine(members[i].s, members[j].s, rng)
	if err != nil {
		return nil, 0, err
	}
	if _, err = e.regret.Repair(p, e.d); err != nil {
		return nil, 0, err
	}
	child, err := p.Complete()
	if err != nil {
		return nil, 0, err
	}
	if e.opts.WithLocal {
		return child, e.ls.Run(child).FinalCost, nil
	}

	return child, child.Cost(e.d), nil
}

// recombine returns a Partial copy of p1 that keeps only the edges shared
// with p2, with ⌊DestroyFraction·n⌋ extra random vertices freed as well.
//
// Complexity: O(n²) worst case for the position shifts of Remove.
func (e *engine) recombine(p1, p2 *solution.Solution, rng *rand.Rand) (*solution.Partial, error) {
	var (
		n       = p1.N()
		drop    = make([]bool, n)
		k, _, _ = perturb.Counts(n, e.opts.DestroyFraction)
		v, u    int
	)
	for v = 0; v < n; v++ {
		u = p1.Next(v)
		if !p2.HasEdge(v, u) {
			drop[v], drop[u] = true, true
		}
	}
	for _, v = range rng.Perm(n)[:k] {
		drop[v] = true
	}

	child := solution.PartialOf(p1.Clone())
	for v = 0; v < n; v++ {
		if !drop[v] {
			continue
		}
		if err := child.Remove(v); err != nil {
			return nil, err
		}
	}

	return child, nil
}
