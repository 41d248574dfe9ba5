// SPDX-License-Identifier: MIT

// Package search - LocalSearch engine and Stats.
package search

import (
	"fmt"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solution"
)

// Stats summarizes one Run.
type Stats struct {
	Iterations int // applied moves
	StartCost  int
	FinalCost  int
}

// Improvement returns StartCost − FinalCost (never negative).
func (st Stats) Improvement() int { return st.StartCost - st.FinalCost }

// LocalSearch is immutable after New and safe for concurrent Run calls on
// distinct solutions.
type LocalSearch struct {
	d       *distance.Dense
	cand    *distance.CandidateList
	variant Variant
}

// New binds a distance matrix and its candidate lists. The result runs the
// CandidateSteepest variant.
func New(d *distance.Dense, cand *distance.CandidateList) (*LocalSearch, error) {
	if d == nil || cand == nil {
		return nil, ErrNilInput
	}
	if cand.Len() != d.Len() {
		return nil, ErrSizeMismatch
	}

	return &LocalSearch{d: d, cand: cand}, nil
}

// WithVariant returns a copy of ls running v.
func (ls *LocalSearch) WithVariant(v Variant) (*LocalSearch, error) {
	if int(v) >= len(variantNames) {
		return nil, fmt.Errorf("%d: %w", v, ErrUnknownVariant)
	}
	cp := *ls
	cp.variant = v

	return &cp, nil
}

// Variant returns the descent strategy of ls.
func (ls *LocalSearch) Variant() Variant { return ls.variant }

// Run applies descent to s in place until no move of the variant's
// neighbourhood has a negative delta. The cost is tracked incrementally from
// the move deltas.
//
// Contracts:
//   - s is a complete Solution over d.Len() vertices.
//   - Run never increases the cost; on a local optimum it performs zero moves.
func (ls *LocalSearch) Run(s *solution.Solution) Stats {
	st := Stats{StartCost: s.Cost(ls.d)}
	st.FinalCost = st.StartCost
	if ls.variant == MoveList {
		return ls.runMoveList(s, st)
	}

	next := ls.bestMove
	switch ls.variant {
	case Steepest:
		next = ls.steepestMove
	case Greedy:
		next = ls.firstMove
	}
	for {
		m, delta, ok := next(s)
		if !ok {
			return st
		}
		if err := m.Apply(s); err != nil {
			return st
		}
		st.FinalCost += delta
		st.Iterations++
	}
}

// bestMove scans the candidate neighbourhood and returns the improving move
// with the lowest delta, ties broken by Move.Less.
func (ls *LocalSearch) bestMove(s *solution.Solution) (best solution.Move, bestDelta int, ok bool) {
	var (
		n     = s.N()
		a     int
		ca    solution.Cycle
		pa    int
		delta int
	)
	consider := func(m solution.Move) {
		if !m.Valid(s) {
			return
		}
		delta = m.Delta(s, ls.d)
		if delta >= 0 {
			return
		}
		if !ok || delta < bestDelta || (delta == bestDelta && m.Less(best)) {
			best, bestDelta, ok = m, delta, true
		}
	}

	for a = 0; a < n; a++ {
		ca, pa, _ = s.Where(a)
		for _, b := range ls.cand.Of(a) {
			cb, pb, _ := s.Where(b)
			if ca == cb {
				if pa < pb {
					consider(solution.EdgeExchange(ca, pa+1, pb))
					consider(solution.EdgeExchange(ca, pa, pb-1))
				} else {
					consider(solution.EdgeExchange(ca, pb+1, pa))
					consider(solution.EdgeExchange(ca, pb, pa-1))
				}
				continue
			}
			consider(exchange(s, s.Next(a), b))
			consider(exchange(s, s.Prev(a), b))
		}
	}

	return best, bestDelta, ok
}

// exchange builds the inter-cycle move swapping u and v, which live in
// different cycles.
func exchange(s *solution.Solution, u, v int) solution.Move {
	cu, pu, _ := s.Where(u)
	_, pv, _ := s.Where(v)
	if cu == solution.A {
		return solution.InterCycleExchange(pu, pv)
	}
	return solution.InterCycleExchange(pv, pu)
}
