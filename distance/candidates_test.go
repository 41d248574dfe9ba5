package distance_test

import (
	"testing"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/stretchr/testify/require"
)

// line builds n collinear points at x = 0, 1, 2, ... so d(i,j) = |i-j|.
func line(n int) *distance.Dense {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if i > j {
				rows[i][j] = i - j
			} else {
				rows[i][j] = j - i
			}
		}
	}
	d, err := distance.NewDense(rows)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCandidateList_OrderAndTies(t *testing.T) {
	cl, err := distance.NewCandidateList(line(8), 3)
	require.NoError(t, err)
	require.Equal(t, 3, cl.K())

	// Vertex 4: 3 and 5 tie at distance 1, lower index first.
	require.Equal(t, []int{3, 5, 2}, cl.Of(4))
	require.Equal(t, []int{1, 2, 3}, cl.Of(0))

	require.True(t, cl.Contains(4, 2))
	require.False(t, cl.Contains(4, 6))
	// The relation is not symmetric in general.
	require.True(t, cl.Contains(0, 3))
	require.False(t, cl.Contains(3, 0))
}

func TestCandidateList_ClampAndErrors(t *testing.T) {
	cl, err := distance.NewCandidateList(line(5), 10)
	require.NoError(t, err)
	require.Equal(t, 4, cl.K())
	require.Len(t, cl.Of(2), 4)

	_, err = distance.NewCandidateList(line(5), 0)
	require.ErrorIs(t, err, distance.ErrBadCandidateK)

	_, err = distance.NewCandidateList(nil, 3)
	require.ErrorIs(t, err, distance.ErrNilMatrix)
}
