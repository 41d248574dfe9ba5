// SPDX-License-Identifier: MIT

// Package construct - start-vertex policies and shared insertion helpers.
package construct

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solution"
)

// StartMode selects the two seed vertices, one per cycle.
type StartMode uint8

const (
	// StartFarthest picks a random first vertex and its farthest vertex second.
	StartFarthest StartMode = iota
	// StartRandom picks two distinct random vertices.
	StartRandom
	// StartMaxPair picks the globally farthest pair; no randomness involved.
	StartMaxPair
)

// String returns the stable mode name.
func (m StartMode) String() string {
	switch m {
	case StartFarthest:
		return "farthest"
	case StartRandom:
		return "random"
	case StartMaxPair:
		return "max-pair"
	default:
		return "unknown"
	}
}

// startPair returns (a, b) with a seeding cycle A and b seeding cycle B.
// Distance ties resolve to the lower index.
//
// Complexity: O(n) for random modes, O(n²) for StartMaxPair.
func startPair(d *distance.Dense, mode StartMode, rng *rand.Rand) (a, b int, err error) {
	n := d.Len()
	switch mode {
	case StartFarthest:
		if rng == nil {
			return 0, 0, ErrNilRNG
		}
		a = rng.Intn(n)
		return a, farthestFrom(d, a), nil

	case StartRandom:
		if rng == nil {
			return 0, 0, ErrNilRNG
		}
		a = rng.Intn(n)
		b = rng.Intn(n - 1)
		if b >= a {
			b++
		}
		return a, b, nil

	case StartMaxPair:
		var (
			i, j int
			best = -1
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if d.At(i, j) > best {
					best, a, b = d.At(i, j), i, j
				}
			}
		}
		return a, b, nil

	default:
		return 0, 0, fmt.Errorf("%d: %w", mode, ErrUnknownStart)
	}
}

// farthestFrom returns the vertex u != v maximizing d(v, u), lowest index on ties.
func farthestFrom(d *distance.Dense, v int) int {
	var (
		row  = d.Row(v)
		best = -1
		arg  = -1
		u    int
	)
	for u = range row {
		if u != v && row[u] > best {
			best, arg = row[u], u
		}
	}

	return arg
}

// seed returns a Partial holding a in cycle A and b in cycle B.
func seed(d *distance.Dense, mode StartMode, rng *rand.Rand) (*solution.Partial, error) {
	a, b, err := startPair(d, mode, rng)
	if err != nil {
		return nil, err
	}
	p, err := solution.NewPartial(d.Len())
	if err != nil {
		return nil, err
	}
	if err = p.Insert(solution.A, 0, a); err != nil {
		return nil, err
	}
	if err = p.Insert(solution.B, 0, b); err != nil {
		return nil, err
	}

	return p, nil
}

// insertionCost is the length increase of placing v at Partial.Insert
// position at of cycle c. An empty cycle costs 0 and a single vertex u
// costs 2·d(u, v); otherwise v lands between t[at-1] and t[at mod L].
//
// Complexity: O(1).
func insertionCost(s *solution.Solution, d *distance.Dense, c solution.Cycle, at, v int) int {
	t := s.Cycle(c)
	switch L := len(t); L {
	case 0:
		return 0
	case 1:
		return 2 * d.At(t[0], v)
	default:
		prev := t[at-1]
		next := t[at%L]
		return d.At(prev, v) + d.At(v, next) - d.At(prev, next)
	}
}

// positions returns the distinct insertion positions of cycle c: [0] for an
// empty cycle, [1] for one or two vertices (both edges of a 2-cycle join the
// same pair), 1..L otherwise where L sits between the last and first vertex.
func positions(s *solution.Solution, c solution.Cycle) (first, last int) {
	switch L := s.Len(c); {
	case L == 0:
		return 0, 0
	case L <= 2:
		return 1, 1
	default:
		return 1, L
	}
}
