// SPDX-License-Identifier: MIT

// Package construct - regret-2 and weighted-regret construction and repair.
//
// For every free vertex v and every feasible position over both cycles (full
// cycles excluded) the insertion costs are ranked: c1 is the best and c2 the
// second best, c2 = c1 when only one position exists. With regret = c2 − c1:
//
//	score(v) = RegretWeight·regret − GreedyWeight·c1
//
// The vertex with the maximal score is inserted at its c1 position, then all
// free vertices are re-evaluated since positions shift after every insertion.
package construct

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solution"
)

// Weights parameterizes the regret score.
type Weights struct {
	Regret float64 `json:"regret"`
	Greedy float64 `json:"greedy"`
}

var (
	// Regret2Weights ranks by pure 2-regret.
	Regret2Weights = Weights{Regret: 1, Greedy: 0}

	// DefaultWeights is the weighted-regret default: regret − c1, equal
	// magnitude with opposite sign.
	DefaultWeights = Weights{Regret: 1, Greedy: 1}
)

// Insertion records one repair step.
type Insertion struct {
	Vertex int            `json:"vertex"`
	Cycle  solution.Cycle `json:"cycle"`
	Pos    int            `json:"pos"`
	Cost   int            `json:"cost"`
}

// Regret is the regret-based construction and repair heuristic.
type Regret struct {
	Weights Weights
	Start   StartMode
}

// NewRegret2 returns the pure 2-regret heuristic.
func NewRegret2(start StartMode) Regret { return Regret{Weights: Regret2Weights, Start: start} }

// NewWeightedRegret returns the weighted-regret heuristic with DefaultWeights.
func NewWeightedRegret(start StartMode) Regret { return Regret{Weights: DefaultWeights, Start: start} }

// Build seeds both cycles with the StartMode pair and repairs the rest.
//
// Complexity: O(n³).
func (r Regret) Build(d *distance.Dense, rng *rand.Rand) (*solution.Solution, error) {
	if d == nil {
		return nil, distance.ErrNilMatrix
	}
	p, err := seed(d, r.Start, rng)
	if err != nil {
		return nil, err
	}
	if _, err = r.Repair(p, d); err != nil {
		return nil, err
	}

	return p.Complete()
}

// Repair inserts every free vertex of p and returns the insertions in the
// order they were applied. A Partial with nothing free is a no-op.
//
// Ties: maximal score, then lower c1, then lower vertex index. The position
// of a vertex prefers cycle A, then the lower position, among equal costs.
//
// Complexity: O(k²·n) for k free vertices.
func (r Regret) Repair(p *solution.Partial, d *distance.Dense) ([]Insertion, error) {
	trace := make([]Insertion, 0, p.NumFree())
	for p.NumFree() > 0 {
		var (
			found     bool
			bestScore float64
			best      Insertion
		)
		for _, v := range p.Free() {
			c1, c2, c, at := rankPositions(p, d, v)
			score := r.Weights.Regret*float64(c2-c1) - r.Weights.Greedy*float64(c1)
			if !found || score > bestScore || (score == bestScore && c1 < best.Cost) {
				found, bestScore = true, score
				best = Insertion{Vertex: v, Cycle: c, Pos: at, Cost: c1}
			}
		}
		if err := p.Insert(best.Cycle, best.Pos, best.Vertex); err != nil {
			return trace, err
		}
		trace = append(trace, best)
	}

	return trace, nil
}

// rankPositions returns the best and second-best insertion costs of v over
// both open cycles, together with the best position.
func rankPositions(p *solution.Partial, d *distance.Dense, v int) (c1, c2 int, bestC solution.Cycle, bestAt int) {
	var (
		s     = p.Solution()
		count int
		c     solution.Cycle
	)
	c1, c2 = math.MaxInt, math.MaxInt
	for c = solution.A; c <= solution.B; c++ {
		if p.Full(c) {
			continue
		}
		first, last := positions(s, c)
		for at := first; at <= last; at++ {
			cost := insertionCost(s, d, c, at, v)
			count++
			switch {
			case cost < c1:
				c2 = c1
				c1, bestC, bestAt = cost, c, at
			case cost < c2:
				c2 = cost
			}
		}
	}
	if count == 1 {
		c2 = c1
	}

	return c1, c2, bestC, bestAt
}
