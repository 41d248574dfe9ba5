// SPDX-License-Identifier: MIT

// Package distance: sentinel error set.
// Every exported function returns one of these sentinels, optionally wrapped
// with the offending indices via fmt.Errorf("...: %w"). Match with errors.Is.
package distance

import "errors"

var (
	// ErrNilMatrix is returned when a nil Matrix is passed in.
	ErrNilMatrix = errors.New("distance: nil matrix")

	// ErrNonSquare is returned when a row-slice input is not n×n.
	ErrNonSquare = errors.New("distance: matrix is not square")

	// ErrTooFewVertices is returned for n < MinVertices.
	ErrTooFewVertices = errors.New("distance: at least 4 vertices are required")

	// ErrNegativeDistance is returned when some d(i,j) < 0.
	ErrNegativeDistance = errors.New("distance: negative distance")

	// ErrAsymmetry is returned when d(i,j) != d(j,i).
	ErrAsymmetry = errors.New("distance: matrix is not symmetric")

	// ErrBadCandidateK is returned when a candidate list size is < 1.
	ErrBadCandidateK = errors.New("distance: candidate list size must be >= 1")
)
