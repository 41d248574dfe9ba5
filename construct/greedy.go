// SPDX-License-Identifier: MIT

// Package construct - two-cycle greedy (cheapest insertion) construction.
package construct

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solution"
)

// GreedyCycle seeds each cycle with its start vertex plus the nearest free
// vertex, then repeatedly performs the cheapest insertion over both
// incomplete cycles.
type GreedyCycle struct {
	Start StartMode
}

// Build constructs a complete Solution.
//
// Ties: lower cost, then lower vertex index, then cycle A, then lower position.
//
// Complexity: O(n³).
func (g GreedyCycle) Build(d *distance.Dense, rng *rand.Rand) (*solution.Solution, error) {
	if d == nil {
		return nil, distance.ErrNilMatrix
	}
	p, err := seed(d, g.Start, rng)
	if err != nil {
		return nil, err
	}

	var (
		s = p.Solution()
		c solution.Cycle
	)
	for c = solution.A; c <= solution.B; c++ {
		v, _ := nearestFree(p, d, s.At(c, 0))
		if err = p.Insert(c, 1, v); err != nil {
			return nil, err
		}
	}

	for p.NumFree() > 0 {
		var (
			bestCost = math.MaxInt
			bestV    = -1
			bestC    solution.Cycle
			bestAt   int
		)
		for _, v := range p.Free() {
			for c = solution.A; c <= solution.B; c++ {
				if p.Full(c) {
					continue
				}
				first, last := positions(s, c)
				for at := first; at <= last; at++ {
					if cost := insertionCost(s, d, c, at, v); cost < bestCost {
						bestCost, bestV, bestC, bestAt = cost, v, c, at
					}
				}
			}
		}
		if err = p.Insert(bestC, bestAt, bestV); err != nil {
			return nil, err
		}
	}

	return p.Complete()
}
