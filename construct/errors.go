// SPDX-License-Identifier: MIT

// Package construct: sentinel error set.
package construct

import "errors"

var (
	// ErrUnknownKind is returned by Build and ParseKind for an unknown heuristic.
	ErrUnknownKind = errors.New("construct: unknown heuristic kind")

	// ErrUnknownStart is returned for an unknown StartMode.
	ErrUnknownStart = errors.New("construct: unknown start mode")

	// ErrUnknownGrowth is returned for an unknown Growth policy.
	ErrUnknownGrowth = errors.New("construct: unknown growth policy")

	// ErrNilRNG is returned when a random StartMode is used without a generator.
	ErrNilRNG = errors.New("construct: nil random generator")
)
