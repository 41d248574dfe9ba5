// SPDX-License-Identifier: MIT

// Package distance holds the instance-side primitives consumed by every solver
// in this module: the symmetric integer distance Matrix, its dense flat
// implementation, fail-fast instance validation and per-vertex candidate lists.
//
// What & Why:
//
//	Solvers never parse instances themselves. An instance provider hands over
//	anything satisfying Matrix (vertex count + distance(i, j)); Flatten copies it
//	once into a row-major Dense so hot loops read a plain []int without
//	interface dispatch. CandidateList precomputes the k nearest neighbours of
//	every vertex and is the pruning structure of the local search.
//
// Contracts:
//   - Distances are nonnegative integers, d(i,j) == d(j,i).
//   - n ≥ 4, so both cycles of a two-cycle solution are non-trivial.
//   - Matrices are immutable for the duration of a run.
//
// Complexity:
//
//	Validate is O(n²). NewCandidateList is O(n² log n). At is O(1).
package distance
