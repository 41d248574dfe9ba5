// SPDX-License-Identifier: MIT

// Package search - full-neighbourhood Steepest and Greedy move selection.
package search

import "github.com/katalvlaran/twocycle/solution"

// eachMove calls fn on every valid move of s in (kind, cycle, i, j) order
// until fn returns false.
//
// Complexity: O(n²) calls.
func eachMove(s *solution.Solution, fn func(solution.Move) bool) {
	var (
		c    solution.Cycle
		i, j int
		L    int
	)
	for c = solution.A; c <= solution.B; c++ {
		L = s.Len(c)
		for i = 0; i < L; i++ {
			for j = i + 1; j < L; j++ {
				if i == 0 && j == L-1 {
					continue
				}
				if !fn(solution.EdgeExchange(c, i, j)) {
					return
				}
			}
		}
	}
	for i = 0; i < s.Len(solution.A); i++ {
		for j = 0; j < s.Len(solution.B); j++ {
			if !fn(solution.InterCycleExchange(i, j)) {
				return
			}
		}
	}
}

// steepestMove returns the improving move with the lowest delta over the
// whole neighbourhood. Enumeration follows Move.Less, so the first minimum
// wins ties.
func (ls *LocalSearch) steepestMove(s *solution.Solution) (best solution.Move, bestDelta int, ok bool) {
	eachMove(s, func(m solution.Move) bool {
		if delta := m.Delta(s, ls.d); delta < 0 && (!ok || delta < bestDelta) {
			best, bestDelta, ok = m, delta, true
		}
		return true
	})

	return best, bestDelta, ok
}

// firstMove returns the first improving move in enumeration order.
func (ls *LocalSearch) firstMove(s *solution.Solution) (first solution.Move, delta int, ok bool) {
	eachMove(s, func(m solution.Move) bool {
		if dm := m.Delta(s, ls.d); dm < 0 {
			first, delta, ok = m, dm, true
			return false
		}
		return true
	})

	return first, delta, ok
}
