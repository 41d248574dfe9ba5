// SPDX-License-Identifier: MIT

// Package perturb - Kind, Small and Large operators.
package perturb

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/twocycle/solution"
)

// Kind is the closed set of perturbation operators.
type Kind uint8

const (
	// KindSmall applies random moves.
	KindSmall Kind = iota
	// KindLarge destroys a fraction of the vertices.
	KindLarge
)

// String returns the stable operator name.
func (k Kind) String() string {
	switch k {
	case KindSmall:
		return "small"
	case KindLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Small applies nMoves uniformly random valid moves to s in place. The move
// kind is drawn first, then its parameters. Cycles shorter than 3 admit no
// edge exchange, in which case an inter-cycle exchange is used.
//
// Complexity: O(nMoves·n) worst case for the 2-opt reversals.
func Small(s *solution.Solution, nMoves int, rng *rand.Rand) error {
	if nMoves < 0 {
		return fmt.Errorf("%d: %w", nMoves, ErrBadMoves)
	}

	var k int
	for k = 0; k < nMoves; k++ {
		if err := RandomMove(s, rng).Apply(s); err != nil {
			return err
		}
	}

	return nil
}

// RandomMove draws one uniformly random valid move for s.
func RandomMove(s *solution.Solution, rng *rand.Rand) solution.Move {
	if rng.Intn(2) == 0 {
		c := solution.Cycle(rng.Intn(2))
		if L := s.Len(c); L >= 3 {
			for {
				i, j := rng.Intn(L), rng.Intn(L)
				if i > j {
					i, j = j, i
				}
				if m := solution.EdgeExchange(c, i, j); m.Valid(s) {
					return m
				}
			}
		}
	}

	return solution.InterCycleExchange(rng.Intn(s.Len(solution.A)), rng.Intn(s.Len(solution.B)))
}

// Counts returns the total number of removed vertices k = ⌊fraction·n⌋ and
// its split kA = |A| − ⌈(n−k)/2⌉, kB = |B| − ⌊(n−k)/2⌋, which keeps the
// remaining cycles within one vertex of each other.
func Counts(n int, fraction float64) (k, kA, kB int) {
	k = int(fraction * float64(n))
	rest := n - k
	kA = solution.TargetSize(n, solution.A) - (rest+1)/2
	kB = solution.TargetSize(n, solution.B) - rest/2

	return k, kA, kB
}

// Large removes ⌊fraction·n⌋ vertices from s, chosen uniformly within each
// cycle according to Counts, and returns the Partial (which takes ownership
// of s) together with the sorted removed vertices. k = 0 is a no-op.
//
// Complexity: O(k·n).
func Large(s *solution.Solution, fraction float64, rng *rand.Rand) (*solution.Partial, []int, error) {
	if fraction < 0 || fraction >= 1 {
		return nil, nil, fmt.Errorf("%g: %w", fraction, ErrBadFraction)
	}

	var (
		_, kA, kB = Counts(s.N(), fraction)
		removed   = make([]int, 0, kA+kB)
	)
	removed = appendSample(removed, s.Cycle(solution.A), kA, rng)
	removed = appendSample(removed, s.Cycle(solution.B), kB, rng)
	slices.Sort(removed)

	p := solution.PartialOf(s)
	for _, v := range removed {
		if err := p.Remove(v); err != nil {
			return nil, nil, err
		}
	}

	return p, removed, nil
}

// appendSample appends k distinct uniformly chosen elements of t to dst.
func appendSample(dst, t []int, k int, rng *rand.Rand) []int {
	if k <= 0 {
		return dst
	}
	for _, i := range rng.Perm(len(t))[:k] {
		dst = append(dst, t[i])
	}

	return dst
}
