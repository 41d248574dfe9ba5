// SPDX-License-Identifier: MIT

// Package solver: sentinel error set.
package solver

import "errors"

var (
	// ErrBadOption is returned when an Options field is out of range.
	ErrBadOption = errors.New("solver: invalid option")

	// ErrUnknownAlgo is returned for an Algo outside the closed enumeration.
	ErrUnknownAlgo = errors.New("solver: unknown algorithm")

	// ErrUnknownInitial is returned for an unknown initial-solution kind.
	ErrUnknownInitial = errors.New("solver: unknown initial solution kind")
)
