// SPDX-License-Identifier: MIT

// Package perturb: sentinel error set.
package perturb

import "errors"

var (
	// ErrBadMoves is returned for a negative move count.
	ErrBadMoves = errors.New("perturb: move count must be >= 0")

	// ErrBadFraction is returned for a destroy fraction outside [0, 1).
	ErrBadFraction = errors.New("perturb: destroy fraction must be in [0, 1)")
)
