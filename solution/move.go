// SPDX-License-Identifier: MIT

// Package solution - Move tagged variant: O(1) delta and in-place application.
//
// EdgeExchange(c, i, j), 0 ≤ i < j < L, (i, j) != (0, L-1):
//
//	reverses t[i..j]. With a = t[i-1], b = t[i], c = t[j], e = t[j+1]
//	(indices mod L) the removed edges are (a,b),(c,e) and the added ones are
//	(a,c),(b,e): Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e).
//
// InterCycleExchange(pa, pb):
//
//	swaps u = A[pa] with v = B[pb]. Each cycle replaces its two edges around
//	the position: Δ = Σ_cycles d(prev,new) + d(new,next) − d(prev,old) − d(old,next).
//	The formula stays exact for 2-cycles where prev == next.
package solution

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/twocycle/distance"
)

// MoveKind tags the closed set of move variants.
type MoveKind uint8

const (
	// KindEdgeExchange is the intra-cycle 2-opt segment reversal.
	KindEdgeExchange MoveKind = iota
	// KindInterCycleExchange swaps one vertex of A with one vertex of B.
	KindInterCycleExchange
)

// String returns the stable kind name.
func (k MoveKind) String() string {
	switch k {
	case KindEdgeExchange:
		return "edge-exchange"
	case KindInterCycleExchange:
		return "inter-cycle-exchange"
	default:
		return "unknown"
	}
}

// Move is a value-typed tagged variant. For KindInterCycleExchange the Cycle
// field is always A, I is the position in A and J the position in B.
type Move struct {
	Kind  MoveKind
	Cycle Cycle
	I, J  int
}

// EdgeExchange returns the 2-opt move reversing positions i..j of cycle c.
func EdgeExchange(c Cycle, i, j int) Move {
	return Move{Kind: KindEdgeExchange, Cycle: c, I: i, J: j}
}

// InterCycleExchange returns the move swapping A[pa] and B[pb].
func InterCycleExchange(pa, pb int) Move {
	return Move{Kind: KindInterCycleExchange, Cycle: A, I: pa, J: pb}
}

// Valid reports whether m can be applied to s.
func (m Move) Valid(s *Solution) bool {
	switch m.Kind {
	case KindEdgeExchange:
		if m.Cycle != A && m.Cycle != B {
			return false
		}
		L := len(s.cycles[m.Cycle])
		return 0 <= m.I && m.I < m.J && m.J < L && !(m.I == 0 && m.J == L-1)
	case KindInterCycleExchange:
		return 0 <= m.I && m.I < len(s.cycles[A]) && 0 <= m.J && m.J < len(s.cycles[B])
	default:
		return false
	}
}

// Delta returns cost(after) − cost(before) without mutating s. m must be
// Valid on s.
//
// Complexity: O(1).
func (m Move) Delta(s *Solution, d *distance.Dense) int {
	if m.Kind == KindEdgeExchange {
		t := s.cycles[m.Cycle]
		L := len(t)
		a := t[(m.I-1+L)%L]
		b := t[m.I]
		c := t[m.J]
		e := t[(m.J+1)%L]
		return d.At(a, c) + d.At(b, e) - d.At(a, b) - d.At(c, e)
	}

	u := s.cycles[A][m.I]
	v := s.cycles[B][m.J]
	return replaceDelta(s.cycles[A], m.I, u, v, d) + replaceDelta(s.cycles[B], m.J, v, u, d)
}

// replaceDelta is the cost change of writing vertex in over out at position p of t.
func replaceDelta(t []int, p, out, in int, d *distance.Dense) int {
	L := len(t)
	prev := t[(p-1+L)%L]
	next := t[(p+1)%L]
	return d.At(prev, in) + d.At(in, next) - d.At(prev, out) - d.At(out, next)
}

// Apply mutates s according to m.
//
// Complexity: O(j−i) for EdgeExchange, O(1) for InterCycleExchange.
func (m Move) Apply(s *Solution) error {
	if !m.Valid(s) {
		return fmt.Errorf("%s: %w", m, ErrBadMove)
	}
	if m.Kind == KindEdgeExchange {
		s.reverse(m.Cycle, m.I, m.J)
		return nil
	}
	s.swap(m.I, m.J)

	return nil
}

// Less is the total order used to break delta ties: kind, cycle, i, j.
func (m Move) Less(o Move) bool {
	return m.Compare(o) < 0
}

// Compare returns -1, 0 or +1 following the (kind, cycle, i, j) order.
func (m Move) Compare(o Move) int {
	if c := cmp.Compare(m.Kind, o.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(m.Cycle, o.Cycle); c != 0 {
		return c
	}
	if c := cmp.Compare(m.I, o.I); c != 0 {
		return c
	}
	return cmp.Compare(m.J, o.J)
}

// String renders e.g. "edge-exchange(A,1,4)" or "inter-cycle-exchange(2,3)".
func (m Move) String() string {
	if m.Kind == KindEdgeExchange {
		return fmt.Sprintf("%s(%s,%d,%d)", m.Kind, m.Cycle, m.I, m.J)
	}
	return fmt.Sprintf("%s(%d,%d)", m.Kind, m.I, m.J)
}
