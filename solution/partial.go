// SPDX-License-Identifier: MIT

// Package solution - Partial: a Solution with a sorted set of free vertices.
package solution

import (
	"fmt"
	"slices"
)

// Partial is a Solution under construction or repair. Free vertices are kept
// sorted ascending so that every consumer iterates them in index order.
type Partial struct {
	s    *Solution
	free []int
}

// NewPartial returns a Partial over n vertices with both cycles empty.
func NewPartial(n int) (*Partial, error) {
	s, err := New(n)
	if err != nil {
		return nil, err
	}
	free := make([]int, n)
	for v := range free {
		free[v] = v
	}

	return &Partial{s: s, free: free}, nil
}

// PartialOf wraps s for destroy/repair. Ownership of s moves to the Partial:
// callers that need the original must Clone first.
func PartialOf(s *Solution) *Partial {
	p := &Partial{s: s}
	var v int
	for v = 0; v < s.n; v++ {
		if s.where[v] == unassigned {
			p.free = append(p.free, v)
		}
	}

	return p
}

// Solution exposes the underlying assignment for read-only queries.
func (p *Partial) Solution() *Solution { return p.s }

// Free returns the sorted free vertices. The slice aliases internal storage.
func (p *Partial) Free() []int { return p.free }

// NumFree returns the number of free vertices.
func (p *Partial) NumFree() int { return len(p.free) }

// Full reports whether cycle c reached its target size.
func (p *Partial) Full(c Cycle) bool { return len(p.s.cycles[c]) == cap(p.s.cycles[c]) }

// Remove unassigns v, closing the gap in its cycle.
//
// Complexity: O(len(cycle)).
func (p *Partial) Remove(v int) error {
	s := p.s
	if v < 0 || v >= s.n {
		return fmt.Errorf("vertex %d: %w", v, ErrBadVertex)
	}
	c := s.where[v]
	if c == unassigned {
		return fmt.Errorf("vertex %d: %w", v, ErrNotAssigned)
	}

	var (
		at = s.pos[v]
		t  = s.cycles[c]
		q  int
	)
	copy(t[at:], t[at+1:])
	t = t[:len(t)-1]
	for q = at; q < len(t); q++ {
		s.pos[t[q]] = q
	}
	s.cycles[c] = t
	s.where[v], s.pos[v] = unassigned, -1

	i, _ := slices.BinarySearch(p.free, v)
	p.free = slices.Insert(p.free, i, v)

	return nil
}

// Insert places the free vertex v at position at of cycle c, shifting the
// tail right. Position at sits between t[at-1] and t[at] (cyclically), and
// at == Len(c) appends after the last vertex.
//
// Complexity: O(len(cycle)).
func (p *Partial) Insert(c Cycle, at, v int) error {
	s := p.s
	if v < 0 || v >= s.n {
		return fmt.Errorf("vertex %d: %w", v, ErrBadVertex)
	}
	if s.where[v] != unassigned {
		return fmt.Errorf("vertex %d: %w", v, ErrNotFree)
	}
	if p.Full(c) {
		return fmt.Errorf("cycle %s: %w", c, ErrCycleFull)
	}
	t := s.cycles[c]
	if at < 0 || at > len(t) {
		return fmt.Errorf("position %d in cycle %s of length %d: %w", at, c, len(t), ErrBadPosition)
	}

	t = slices.Insert(t, at, v)
	var q int
	for q = at; q < len(t); q++ {
		s.pos[t[q]] = q
	}
	s.cycles[c] = t
	s.where[v] = c

	i, _ := slices.BinarySearch(p.free, v)
	p.free = slices.Delete(p.free, i, i+1)

	return nil
}

// Complete validates that nothing is free and returns the Solution.
func (p *Partial) Complete() (*Solution, error) {
	if len(p.free) > 0 {
		return nil, fmt.Errorf("%d free: %w", len(p.free), ErrIncomplete)
	}
	if err := p.s.Validate(); err != nil {
		return nil, err
	}

	return p.s, nil
}
