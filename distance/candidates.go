// SPDX-License-Identifier: MIT

// Package distance - k-nearest candidate lists.
//
// The candidate list is the pruning structure of the steepest-descent local
// search: only moves that introduce an edge (v, u) with u among the k nearest
// vertices of v are evaluated. Lists are static for an instance.
package distance

import (
	"cmp"
	"slices"
)

// DefaultCandidateK is the per-vertex candidate list size used by default.
const DefaultCandidateK = 10

// CandidateList stores, for each vertex, its k nearest other vertices ordered
// by (distance, index). It is immutable and safe for concurrent reads.
type CandidateList struct {
	k    int
	near [][]int
	mark []bool // mark[u*n+v] == true iff v ∈ near[u]
	n    int
}

// NewCandidateList builds the k-nearest lists of d. k is clamped to n-1.
//
// Complexity: O(n² log n) time, O(n·k + n²) space.
func NewCandidateList(d *Dense, k int) (*CandidateList, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if k < 1 {
		return nil, ErrBadCandidateK
	}

	var n = d.Len()
	if k > n-1 {
		k = n - 1
	}

	cl := &CandidateList{
		k:    k,
		near: make([][]int, n),
		mark: make([]bool, n*n),
		n:    n,
	}

	var (
		order = make([]int, 0, n-1)
		v, u  int
	)
	for v = 0; v < n; v++ {
		order = order[:0]
		for u = 0; u < n; u++ {
			if u != v {
				order = append(order, u)
			}
		}
		row := d.Row(v)
		slices.SortFunc(order, func(a, b int) int {
			if c := cmp.Compare(row[a], row[b]); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})

		cl.near[v] = slices.Clone(order[:k])
		for _, u = range cl.near[v] {
			cl.mark[v*n+u] = true
		}
	}

	return cl, nil
}

// Len returns the number of vertices covered.
func (cl *CandidateList) Len() int { return cl.n }

// K returns the effective list size.
func (cl *CandidateList) K() int { return cl.k }

// Of returns the read-only candidate list of v, nearest first.
func (cl *CandidateList) Of(v int) []int { return cl.near[v] }

// Contains reports whether u is among the k nearest vertices of v.
//
// Complexity: O(1).
func (cl *CandidateList) Contains(v, u int) bool { return cl.mark[v*cl.n+u] }
