// SPDX-License-Identifier: MIT

// Package distance - fail-fast instance validation.
//
// Validate is run once by every solver entry point before any driver starts.
// The checks are ordered by cost and by severity: shape first, then per-entry
// sign, then symmetry. The first violation wins.
package distance

import "fmt"

// Validate checks the instance provider contract:
//   - m is non-nil and n ≥ MinVertices,
//   - d(i,j) ≥ 0 for all i ≠ j,
//   - d(i,j) == d(j,i).
//
// The diagonal is never read by the solvers and is not checked.
//
// Complexity: O(n²) time, O(1) space.
func Validate(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	var n = m.Len()
	if n < MinVertices {
		return fmt.Errorf("n=%d: %w", n, ErrTooFewVertices)
	}

	var (
		i, j int
		dij  int
		dji  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dij = m.At(i, j)
			dji = m.At(j, i)
			if dij < 0 {
				return fmt.Errorf("d(%d,%d)=%d: %w", i, j, dij, ErrNegativeDistance)
			}
			if dji < 0 {
				return fmt.Errorf("d(%d,%d)=%d: %w", j, i, dji, ErrNegativeDistance)
			}
			if dij != dji {
				return fmt.Errorf("d(%d,%d)=%d, d(%d,%d)=%d: %w", i, j, dij, j, i, dji, ErrAsymmetry)
			}
		}
	}

	return nil
}
