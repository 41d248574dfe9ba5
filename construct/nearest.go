// SPDX-License-Identifier: MIT

// Package construct - two-cycle nearest-neighbour construction.
package construct

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solution"
)

// Growth selects which cycle is extended next by NearestNeighbor.
type Growth uint8

const (
	// GrowRoundRobin alternates A, B, A, ... skipping full cycles.
	GrowRoundRobin Growth = iota
	// GrowGreedy extends whichever open endpoint has the globally nearest
	// free vertex.
	GrowGreedy
)

// String returns the stable policy name.
func (g Growth) String() string {
	switch g {
	case GrowRoundRobin:
		return "round-robin"
	case GrowGreedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// NearestNeighbor grows both cycles as open paths from their start vertices,
// appending the free vertex nearest to the active endpoint. A cycle closes
// implicitly once it reaches its target size.
type NearestNeighbor struct {
	Start  StartMode
	Growth Growth
}

// Build constructs a complete Solution.
//
// Ties: lower distance, then cycle A before B, then lower vertex index.
//
// Complexity: O(n²).
func (nn NearestNeighbor) Build(d *distance.Dense, rng *rand.Rand) (*solution.Solution, error) {
	if d == nil {
		return nil, distance.ErrNilMatrix
	}
	if nn.Growth != GrowRoundRobin && nn.Growth != GrowGreedy {
		return nil, fmt.Errorf("%d: %w", nn.Growth, ErrUnknownGrowth)
	}
	p, err := seed(d, nn.Start, rng)
	if err != nil {
		return nil, err
	}

	var (
		s      = p.Solution()
		active = solution.B // the first round-robin step flips to A
		c      solution.Cycle
		v      int
	)
	for p.NumFree() > 0 {
		switch nn.Growth {
		case GrowRoundRobin:
			active = active.Other()
			if p.Full(active) {
				active = active.Other()
			}
			c = active
			v, _ = nearestFree(p, d, endpoint(s, c))
		default:
			c, v = greedyStep(p, d)
		}
		if err = p.Insert(c, s.Len(c), v); err != nil {
			return nil, err
		}
	}

	return p.Complete()
}

// endpoint is the last vertex appended to cycle c.
func endpoint(s *solution.Solution, c solution.Cycle) int {
	return s.At(c, s.Len(c)-1)
}

// nearestFree returns the free vertex nearest to u (lowest index on ties).
func nearestFree(p *solution.Partial, d *distance.Dense, u int) (v, dist int) {
	row := d.Row(u)
	v, dist = -1, math.MaxInt
	for _, w := range p.Free() {
		if row[w] < dist {
			v, dist = w, row[w]
		}
	}

	return v, dist
}

// greedyStep picks the (open cycle, free vertex) pair with the globally
// shortest endpoint distance.
func greedyStep(p *solution.Partial, d *distance.Dense) (solution.Cycle, int) {
	var (
		s        = p.Solution()
		bestC    = solution.A
		bestV    = -1
		bestDist = math.MaxInt
		c        solution.Cycle
	)
	for c = solution.A; c <= solution.B; c++ {
		if p.Full(c) {
			continue
		}
		if v, dist := nearestFree(p, d, endpoint(s, c)); dist < bestDist {
			bestC, bestV, bestDist = c, v, dist
		}
	}

	return bestC, bestV
}
