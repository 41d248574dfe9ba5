// SPDX-License-Identifier: MIT

// Package experiment: sentinel error set.
package experiment

import "errors"

var (
	// ErrBadTrials is returned for a trial count below 1.
	ErrBadTrials = errors.New("experiment: trials must be >= 1")

	// ErrInvalidResult is returned when a trial's solution breaks the
	// partition invariant or its reported cost does not match recomputation.
	ErrInvalidResult = errors.New("experiment: invalid trial result")
)
