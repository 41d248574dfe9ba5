// SPDX-License-Identifier: MIT

// Package solution - Solution type, constructors, queries and cost.
package solution

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/twocycle/distance"
)

// Cycle identifies one of the two tours.
type Cycle int8

const (
	// A is the larger cycle, target size ⌈n/2⌉.
	A Cycle = 0
	// B is the smaller cycle, target size ⌊n/2⌋.
	B Cycle = 1

	// unassigned marks a vertex that lives in no cycle (Partial only).
	unassigned Cycle = -1
)

// Other returns the opposite cycle.
func (c Cycle) Other() Cycle { return 1 - c }

// String renders "A" or "B".
func (c Cycle) String() string {
	switch c {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return "?"
	}
}

// TargetSize returns the fixed size of cycle c for n vertices.
func TargetSize(n int, c Cycle) int {
	if c == A {
		return (n + 1) / 2
	}
	return n / 2
}

// Solution is an ordered pair of disjoint cycles over {0..n-1}.
//
// Invariants (for complete solutions, checked by Validate):
//   - every vertex appears exactly once across both cycles;
//   - len(A) == ⌈n/2⌉ and len(B) == ⌊n/2⌋;
//   - where[v]/pos[v] mirror the arrays.
type Solution struct {
	n      int
	cycles [2][]int // vertex order per cycle, cap == target size
	where  []Cycle  // vertex → cycle, unassigned when free
	pos    []int    // vertex → position in its cycle
}

// New returns an empty Solution over n vertices: both cycles empty and every
// vertex unassigned. It is the starting point of Partial constructions.
func New(n int) (*Solution, error) {
	if n < distance.MinVertices {
		return nil, ErrBadSize
	}
	s := &Solution{
		n:     n,
		where: make([]Cycle, n),
		pos:   make([]int, n),
	}
	s.cycles[A] = make([]int, 0, TargetSize(n, A))
	s.cycles[B] = make([]int, 0, TargetSize(n, B))

	var v int
	for v = 0; v < n; v++ {
		s.where[v] = unassigned
		s.pos[v] = -1
	}

	return s, nil
}

// FromCycles builds a Solution from explicit vertex orders and validates the
// partition invariant. The input slices are copied.
//
// Complexity: O(n).
func FromCycles(n int, a, b []int) (*Solution, error) {
	s, err := New(n)
	if err != nil {
		return nil, err
	}
	if len(a) != TargetSize(n, A) || len(b) != TargetSize(n, B) {
		return nil, fmt.Errorf("sizes %d/%d for n=%d: %w", len(a), len(b), n, ErrCycleSize)
	}

	var (
		c Cycle
		p int
		v int
	)
	for c = A; c <= B; c++ {
		src := a
		if c == B {
			src = b
		}
		for p, v = range src {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("vertex %d: %w", v, ErrBadVertex)
			}
			if s.where[v] != unassigned {
				return nil, fmt.Errorf("vertex %d repeated: %w", v, ErrNotPartition)
			}
			s.cycles[c] = append(s.cycles[c], v)
			s.where[v] = c
			s.pos[v] = p
		}
	}

	return s, nil
}

// Random returns a uniformly random complete Solution: a random permutation
// whose first ⌈n/2⌉ vertices form A and the rest form B.
//
// Complexity: O(n).
func Random(n int, rng *rand.Rand) (*Solution, error) {
	if n < distance.MinVertices {
		return nil, ErrBadSize
	}
	perm := rng.Perm(n)
	half := TargetSize(n, A)

	return FromCycles(n, perm[:half], perm[half:])
}

// N returns the size of the vertex universe.
func (s *Solution) N() int { return s.n }

// Len returns the current length of cycle c.
func (s *Solution) Len(c Cycle) int { return len(s.cycles[c]) }

// Target returns the fixed target length of cycle c.
func (s *Solution) Target(c Cycle) int { return cap(s.cycles[c]) }

// At returns the vertex stored at position p of cycle c.
func (s *Solution) At(c Cycle, p int) int { return s.cycles[c][p] }

// Cycle returns the read-only vertex order of c. The slice aliases internal
// storage and is invalidated by any mutation.
func (s *Solution) Cycle(c Cycle) []int { return s.cycles[c] }

// Cycles returns copies of both vertex orders.
func (s *Solution) Cycles() (a, b []int) {
	a = append([]int(nil), s.cycles[A]...)
	b = append([]int(nil), s.cycles[B]...)
	return a, b
}

// Where returns the cycle and position of v; ok is false for a free vertex.
func (s *Solution) Where(v int) (c Cycle, p int, ok bool) {
	c = s.where[v]
	if c == unassigned {
		return c, -1, false
	}
	return c, s.pos[v], true
}

// Assigned reports whether v belongs to a cycle.
func (s *Solution) Assigned(v int) bool { return s.where[v] != unassigned }

// Next returns the successor of an assigned vertex v in its cycle.
func (s *Solution) Next(v int) int {
	t := s.cycles[s.where[v]]
	p := s.pos[v] + 1
	if p == len(t) {
		p = 0
	}
	return t[p]
}

// Prev returns the predecessor of an assigned vertex v in its cycle.
func (s *Solution) Prev(v int) int {
	t := s.cycles[s.where[v]]
	p := s.pos[v] - 1
	if p < 0 {
		p = len(t) - 1
	}
	return t[p]
}

// HasEdge reports whether u and v are adjacent in the same cycle, either
// orientation.
//
// Complexity: O(1).
func (s *Solution) HasEdge(u, v int) bool {
	if u == v || s.where[u] == unassigned || s.where[u] != s.where[v] {
		return false
	}
	if len(s.cycles[s.where[u]]) < 2 {
		return false
	}
	return s.Next(u) == v || s.Prev(u) == v
}

// Clone returns a deep copy that shares nothing with s.
//
// Complexity: O(n).
func (s *Solution) Clone() *Solution {
	c := &Solution{
		n:     s.n,
		where: append([]Cycle(nil), s.where...),
		pos:   append([]int(nil), s.pos...),
	}
	c.cycles[A] = append(make([]int, 0, cap(s.cycles[A])), s.cycles[A]...)
	c.cycles[B] = append(make([]int, 0, cap(s.cycles[B])), s.cycles[B]...)

	return c
}

// CycleCost returns the closed-tour length of cycle c. Cycles with fewer than
// two vertices cost 0; a 2-cycle costs 2·d(u, v).
//
// Complexity: O(len(c)).
func (s *Solution) CycleCost(d *distance.Dense, c Cycle) int {
	t := s.cycles[c]
	var (
		L     = len(t)
		total int
		p     int
	)
	if L < 2 {
		return 0
	}
	for p = 0; p < L-1; p++ {
		total += d.At(t[p], t[p+1])
	}
	total += d.At(t[L-1], t[0])

	return total
}

// Cost returns the total length of both cycles.
//
// Complexity: O(n).
func (s *Solution) Cost(d *distance.Dense) int {
	return s.CycleCost(d, A) + s.CycleCost(d, B)
}

// Validate checks the partition invariant of a complete Solution.
//
// Complexity: O(n).
func (s *Solution) Validate() error {
	if s.n < distance.MinVertices {
		return ErrBadSize
	}

	var (
		c    Cycle
		p, v int
		seen = make([]bool, s.n)
	)
	for c = A; c <= B; c++ {
		if len(s.cycles[c]) != TargetSize(s.n, c) {
			return fmt.Errorf("cycle %s has %d vertices, want %d: %w",
				c, len(s.cycles[c]), TargetSize(s.n, c), ErrCycleSize)
		}
		for p, v = range s.cycles[c] {
			if v < 0 || v >= s.n {
				return fmt.Errorf("vertex %d: %w", v, ErrBadVertex)
			}
			if seen[v] {
				return fmt.Errorf("vertex %d repeated: %w", v, ErrNotPartition)
			}
			if s.where[v] != c || s.pos[v] != p {
				return fmt.Errorf("index of vertex %d is stale: %w", v, ErrNotPartition)
			}
			seen[v] = true
		}
	}

	return nil
}

// String renders both cycles, for tests and debugging.
func (s *Solution) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "A%v B%v", s.cycles[A], s.cycles[B])
	return b.String()
}

// reverse reverses positions i..j (inclusive) of cycle c and refreshes the
// inverse index for the touched range.
//
// Complexity: O(j-i).
func (s *Solution) reverse(c Cycle, i, j int) {
	t := s.cycles[c]
	for i < j {
		t[i], t[j] = t[j], t[i]
		s.pos[t[i]] = i
		s.pos[t[j]] = j
		i++
		j--
	}
	if i == j {
		s.pos[t[i]] = i
	}
}

// swap exchanges A[pa] and B[pb].
func (s *Solution) swap(pa, pb int) {
	u, v := s.cycles[A][pa], s.cycles[B][pb]
	s.cycles[A][pa], s.cycles[B][pb] = v, u
	s.where[v], s.pos[v] = A, pa
	s.where[u], s.pos[u] = B, pb
}
