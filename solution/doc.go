// SPDX-License-Identifier: MIT

// Package solution implements the two-cycle partition model shared by every
// construction, local-search and metaheuristic component of the module.
//
// What & Why:
//
//	A Solution splits the vertex universe {0..n-1} into two disjoint closed
//	tours A and B with |A| = ⌈n/2⌉ and |B| = ⌊n/2⌋. Each cycle is a plain
//	[]int with fixed capacity; an inverse index vertex → (cycle, position)
//	answers Where/Next/Prev/HasEdge in O(1). Arrays (rather than linked
//	nodes) keep the 2-opt segment reversal a tight in-place swap loop.
//
//	A Partial is a Solution with some vertices unassigned. Destroy steps
//	produce Partials; repair heuristics insert the free vertices back.
//
//	Move is a closed tagged variant with two kinds:
//	  - EdgeExchange(c, i, j): reverse positions i..j of cycle c (2-opt);
//	  - InterCycleExchange(pa, pb): swap A[pa] with B[pb].
//	Delta is computed in O(1) from the endpoint distances.
//
// Contracts:
//   - Methods never print and never panic on valid indices; invalid input is
//     reported through the sentinels in errors.go.
//   - A Solution is not safe for concurrent mutation. Clone before sharing.
//
// Complexity:
//
//	Where/Next/Prev/HasEdge/Delta: O(1). Apply(EdgeExchange): O(j-i).
//	Partial.Insert/Remove: O(cycle length) for the position shift.
package solution
