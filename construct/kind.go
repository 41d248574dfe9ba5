// SPDX-License-Identifier: MIT

// Package construct - closed Kind enumeration and the Build dispatcher.
package construct

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solution"
)

// Builder is implemented by every construction heuristic.
type Builder interface {
	Build(d *distance.Dense, rng *rand.Rand) (*solution.Solution, error)
}

var (
	_ Builder = NearestNeighbor{}
	_ Builder = GreedyCycle{}
	_ Builder = Regret{}
)

// Kind enumerates the construction heuristics.
type Kind uint8

const (
	// KindRandom is a uniformly random partition.
	KindRandom Kind = iota
	// KindNearestNeighbor is NearestNeighbor with round-robin growth.
	KindNearestNeighbor
	// KindGreedyCycle is GreedyCycle.
	KindGreedyCycle
	// KindRegret2 is Regret with Regret2Weights.
	KindRegret2
	// KindWeightedRegret is Regret with DefaultWeights.
	KindWeightedRegret
)

var kindNames = [...]string{
	KindRandom:          "random",
	KindNearestNeighbor: "nearest-neighbor",
	KindGreedyCycle:     "greedy-cycle",
	KindRegret2:         "regret2",
	KindWeightedRegret:  "weighted-regret",
}

// String returns the stable kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String, case-insensitive.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Build runs heuristic kind with StartFarthest and its default settings.
func Build(kind Kind, d *distance.Dense, rng *rand.Rand) (*solution.Solution, error) {
	if d == nil {
		return nil, distance.ErrNilMatrix
	}
	switch kind {
	case KindRandom:
		if rng == nil {
			return nil, ErrNilRNG
		}
		return solution.Random(d.Len(), rng)
	case KindNearestNeighbor:
		return NearestNeighbor{Start: StartFarthest, Growth: GrowRoundRobin}.Build(d, rng)
	case KindGreedyCycle:
		return GreedyCycle{Start: StartFarthest}.Build(d, rng)
	case KindRegret2:
		return NewRegret2(StartFarthest).Build(d, rng)
	case KindWeightedRegret:
		return NewWeightedRegret(StartFarthest).Build(d, rng)
	default:
		return nil, fmt.Errorf("%d: %w", kind, ErrUnknownKind)
	}
}
