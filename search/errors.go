// SPDX-License-Identifier: MIT

// Package search: sentinel error set.
package search

import "errors"

var (
	// ErrNilInput is returned when the matrix or the candidate list is nil.
	ErrNilInput = errors.New("search: nil matrix or candidate list")

	// ErrSizeMismatch is returned when the candidate list and matrix disagree on n.
	ErrSizeMismatch = errors.New("search: candidate list size differs from matrix")

	// ErrUnknownVariant is returned for a Variant outside the closed enumeration.
	ErrUnknownVariant = errors.New("search: unknown variant")
)
