// SPDX-License-Identifier: MIT

// Package solution: sentinel error set.
package solution

import "errors"

var (
	// ErrBadSize is returned for a vertex universe smaller than 4.
	ErrBadSize = errors.New("solution: at least 4 vertices are required")

	// ErrBadVertex is returned for a vertex id outside [0, n).
	ErrBadVertex = errors.New("solution: vertex out of range")

	// ErrNotPartition is returned when the cycles are not a partition of {0..n-1}.
	ErrNotPartition = errors.New("solution: cycles do not partition the vertex set")

	// ErrCycleSize is returned when a cycle length differs from its target.
	ErrCycleSize = errors.New("solution: cycle size differs from target")

	// ErrCycleFull is returned when inserting into a cycle that reached its target size.
	ErrCycleFull = errors.New("solution: cycle is full")

	// ErrBadPosition is returned for an insertion position outside [0, len].
	ErrBadPosition = errors.New("solution: position out of range")

	// ErrNotFree is returned when inserting a vertex that is already assigned.
	ErrNotFree = errors.New("solution: vertex is already assigned")

	// ErrNotAssigned is returned when removing a vertex that is not in a cycle.
	ErrNotAssigned = errors.New("solution: vertex is not assigned")

	// ErrIncomplete is returned by Complete while free vertices remain.
	ErrIncomplete = errors.New("solution: partial solution has free vertices")

	// ErrBadMove is returned by Apply for a move that is not valid on the solution.
	ErrBadMove = errors.New("solution: invalid move")
)
