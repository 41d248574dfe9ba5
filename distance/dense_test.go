package distance_test

import (
	"testing"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/stretchr/testify/require"
)

// square4 is the unit square 0-1-2-3 with diagonals of length 14 (≈ 10·√2).
func square4() [][]int {
	return [][]int{
		{0, 10, 14, 10},
		{10, 0, 10, 14},
		{14, 10, 0, 10},
		{10, 14, 10, 0},
	}
}

// funcMatrix adapts a closure to distance.Matrix to exercise the generic path.
type funcMatrix struct {
	n int
	f func(i, j int) int
}

func (m funcMatrix) Len() int        { return m.n }
func (m funcMatrix) At(i, j int) int { return m.f(i, j) }

func TestNewDense_ShapeAndCopy(t *testing.T) {
	rows := square4()
	d, err := distance.NewDense(rows)
	require.NoError(t, err)
	require.Equal(t, 4, d.Len())
	require.Equal(t, 14, d.At(0, 2))

	// Mutating the input must not leak into the matrix.
	rows[0][2] = 99
	require.Equal(t, 14, d.At(0, 2))
	require.Equal(t, []int{14, 10, 0, 10}, d.Row(2))
}

func TestNewDense_Errors(t *testing.T) {
	_, err := distance.NewDense(nil)
	require.ErrorIs(t, err, distance.ErrNilMatrix)

	_, err = distance.NewDense([][]int{{0, 1}, {1}})
	require.ErrorIs(t, err, distance.ErrNonSquare)
}

func TestFlatten(t *testing.T) {
	m := funcMatrix{n: 5, f: func(i, j int) int {
		if i > j {
			return i - j
		}
		return j - i
	}}
	d, err := distance.Flatten(m)
	require.NoError(t, err)
	require.Equal(t, 5, d.Len())
	require.Equal(t, 3, d.At(4, 1))

	// A *Dense is passed through without copying.
	same, err := distance.Flatten(d)
	require.NoError(t, err)
	require.Same(t, d, same)

	_, err = distance.Flatten(nil)
	require.ErrorIs(t, err, distance.ErrNilMatrix)
}

func TestDense_String(t *testing.T) {
	d, err := distance.NewDense([][]int{{0, 1, 2, 3}, {1, 0, 4, 5}, {2, 4, 0, 6}, {3, 5, 6, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1, 2, 3]\n[1, 0, 4, 5]\n[2, 4, 0, 6]\n[3, 5, 6, 0]\n", d.String())
}
