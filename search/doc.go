// SPDX-License-Identifier: MIT

// Package search implements steepest-descent local search for two-cycle
// solutions. The default variant restricts the neighbourhood with candidate
// lists; Steepest, Greedy and MoveList search the full neighbourhood (every
// 2-opt of either cycle and every inter-cycle exchange).
//
// What & Why:
//
//	A full steepest descent over every 2-opt and every inter-cycle exchange is
//	O(n²) moves per step. Restricting the neighbourhood to moves that introduce
//	an edge (a, b) with b among the k nearest vertices of a keeps a step at
//	O(n·k) while retaining almost all improving moves on Euclidean instances.
//
// Candidate neighbourhood for each vertex a and each candidate b:
//   - same cycle: the two 2-opt moves adding (a, b), one pairing the
//     successors (next a, next b), one pairing the predecessors;
//   - different cycles: swapping b with next(a) and with prev(a), which puts
//     b beside a.
//
// Determinism:
//
//	The best move is the lowest delta, ties broken by solution.Move.Less.
//	Greedy takes the first improving move in the same order. Results depend
//	only on the input solution, the variant and the candidate lists.
//
// Complexity:
//
//	O(n·k) delta evaluations per candidate step, O(n²) per full step, plus
//	O(n) per applied 2-opt.
package search
