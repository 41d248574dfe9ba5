// SPDX-License-Identifier: MIT

// Package search - MoveList variant: improving moves remembered across steps.
//
// Entries are keyed by vertices rather than positions, so they survive the
// shifts and reversals of later moves. Each step takes the cheapest listed
// entry that still applies and still improves, drops the stale entries in
// front of it, and lists the improving moves around the vertices it touched.
// When the list runs dry the whole neighbourhood is scanned once more, so
// the result is a full local optimum.
package search

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/twocycle/solution"
)

// entry is a listed move. An edge exchange drops edges (a,b) and (c,e) and
// adds (a,c) and (b,e); an inter-cycle exchange swaps a and b. delta is the
// value at listing time and only orders the list.
type entry struct {
	delta      int
	kind       solution.MoveKind
	a, b, c, e int
}

func compareEntries(x, y entry) int {
	return cmp.Or(
		cmp.Compare(x.delta, y.delta),
		cmp.Compare(x.kind, y.kind),
		cmp.Compare(x.a, y.a),
		cmp.Compare(x.b, y.b),
		cmp.Compare(x.c, y.c),
		cmp.Compare(x.e, y.e),
	)
}

// keyOf returns the entry of a valid move m on s.
func keyOf(s *solution.Solution, m solution.Move, delta int) entry {
	if m.Kind == solution.KindInterCycleExchange {
		return entry{delta: delta, kind: m.Kind, a: s.At(solution.A, m.I), b: s.At(solution.B, m.J)}
	}
	t := s.Cycle(m.Cycle)
	L := len(t)

	return entry{
		delta: delta,
		kind:  m.Kind,
		a:     t[(m.I-1+L)%L],
		b:     t[m.I],
		c:     t[m.J],
		e:     t[(m.J+1)%L],
	}
}

// resolve maps e to a positional move on the current s. ok is false when the
// dropped edges are gone or now run in opposite directions.
func resolve(s *solution.Solution, e entry) (solution.Move, bool) {
	if e.kind == solution.KindInterCycleExchange {
		ca, pa, _ := s.Where(e.a)
		cb, pb, _ := s.Where(e.b)
		switch {
		case ca == cb:
			return solution.Move{}, false
		case ca == solution.A:
			return solution.InterCycleExchange(pa, pb), true
		default:
			return solution.InterCycleExchange(pb, pa), true
		}
	}

	ca, _, _ := s.Where(e.a)
	cc, _, _ := s.Where(e.c)
	if ca != cc {
		return solution.Move{}, false
	}
	switch {
	case s.Next(e.a) == e.b && s.Next(e.c) == e.e:
	case s.Prev(e.a) == e.b && s.Prev(e.c) == e.e:
		// Both edges reversed: the same exchange read forward.
		e.a, e.b, e.c, e.e = e.e, e.c, e.b, e.a
	default:
		return solution.Move{}, false
	}

	_, i, _ := s.Where(e.b)
	_, j, _ := s.Where(e.c)
	if i > j {
		// b..c wraps around; reverse the complementary segment e..a.
		_, i, _ = s.Where(e.e)
		_, j, _ = s.Where(e.a)
	}
	m := solution.EdgeExchange(ca, i, j)

	return m, m.Valid(s)
}

// runMoveList is Run for the MoveList variant.
func (ls *LocalSearch) runMoveList(s *solution.Solution, st Stats) Stats {
	list := ls.listAll(s)
	for len(list) > 0 {
		slices.SortStableFunc(list, compareEntries)

		applied := false
		for k, e := range list {
			m, ok := resolve(s, e)
			if !ok {
				continue
			}
			delta := m.Delta(s, ls.d)
			if delta >= 0 {
				continue
			}
			if err := m.Apply(s); err != nil {
				return st
			}
			st.FinalCost += delta
			st.Iterations++
			applied = true

			rest := list[k+1:]
			list = ls.listAround(s, touched(s, e), rest)
			break
		}
		if !applied {
			list = ls.listAll(s)
		}
	}

	return st
}

// listAll returns every improving move of s.
func (ls *LocalSearch) listAll(s *solution.Solution) []entry {
	var list []entry
	eachMove(s, func(m solution.Move) bool {
		if delta := m.Delta(s, ls.d); delta < 0 {
			list = append(list, keyOf(s, m, delta))
		}
		return true
	})

	return list
}

// touched returns the endpoints of the applied entry e together with their
// current neighbours, sorted and without duplicates.
func touched(s *solution.Solution, e entry) []int {
	ends := []int{e.a, e.b}
	if e.kind == solution.KindEdgeExchange {
		ends = append(ends, e.c, e.e)
	}
	out := make([]int, 0, 3*len(ends))
	for _, v := range ends {
		out = append(out, v, s.Prev(v), s.Next(v))
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// listAround appends to dst the improving moves that drop the edge leaving a
// vertex of verts or exchange a vertex of verts with the other cycle.
func (ls *LocalSearch) listAround(s *solution.Solution, verts []int, dst []entry) []entry {
	out := slices.Clip(dst)
	add := func(m solution.Move) {
		if !m.Valid(s) {
			return
		}
		if delta := m.Delta(s, ls.d); delta < 0 {
			out = append(out, keyOf(s, m, delta))
		}
	}

	for _, v := range verts {
		c, p, _ := s.Where(v)
		for q := 0; q < s.Len(c); q++ {
			if q != p {
				add(solution.EdgeExchange(c, min(p, q)+1, max(p, q)))
			}
		}
		for q := 0; q < s.Len(c.Other()); q++ {
			add(exchange(s, v, s.At(c.Other(), q)))
		}
	}

	return out
}
