// SPDX-License-Identifier: MIT

// Package distance - Matrix contract and the Dense row-major implementation.
package distance

import (
	"fmt"
	"strings"
)

// MinVertices is the smallest instance that admits two non-trivial cycles.
const MinVertices = 4

// Matrix is the instance provider contract: a vertex count and a distance
// function over vertex pairs. Implementations must be safe for concurrent reads.
type Matrix interface {
	// Len returns the number of vertices n.
	Len() int

	// At returns d(i, j) for 0 ≤ i, j < n.
	At(i, j int) int
}

// Dense is a row-major n×n matrix of int distances.
// The zero value is not usable; build it with NewDense or Flatten.
type Dense struct {
	n    int   // number of vertices
	data []int // flat backing storage, len == n*n
}

var _ Matrix = (*Dense)(nil)

// NewDense copies rows into a fresh Dense.
// Only the shape is checked here; distance semantics are checked by Validate.
//
// Complexity: O(n²) time and memory.
func NewDense(rows [][]int) (*Dense, error) {
	var n = len(rows)
	if n == 0 {
		return nil, ErrNilMatrix
	}

	d := &Dense{n: n, data: make([]int, n*n)}

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		copy(d.data[i*n:(i+1)*n], rows[i])
	}

	return d, nil
}

// Flatten prefetches any Matrix into a Dense. A *Dense input is returned as is.
//
// Complexity: O(n²) interface calls, once per run.
func Flatten(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return nil, ErrNilMatrix
		}
		return d, nil
	}

	var n = m.Len()
	if n <= 0 {
		return nil, ErrNilMatrix
	}
	d := &Dense{n: n, data: make([]int, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d.data[i*n+j] = m.At(i, j)
		}
	}

	return d, nil
}

// Len returns the number of vertices.
func (d *Dense) Len() int { return d.n }

// At returns d(i, j). Indices are not checked: out-of-range access panics
// like any slice access, callers index with vertex ids they own.
func (d *Dense) At(i, j int) int { return d.data[i*d.n+j] }

// Row returns the read-only distance row of vertex i.
func (d *Dense) Row(i int) []int { return d.data[i*d.n : (i+1)*d.n] }

// String renders the matrix one row per line, for tests and debugging.
func (d *Dense) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < d.n; i++ {
		b.WriteByte('[')
		for j = 0; j < d.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", d.data[i*d.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
