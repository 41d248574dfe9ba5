package solution_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/twocycle/solution"
	"github.com/stretchr/testify/require"
)

// randomMove draws a uniformly random valid move of a random kind.
func randomMove(s *solution.Solution, rng *rand.Rand) solution.Move {
	for {
		if rng.Intn(2) == 0 {
			return solution.InterCycleExchange(rng.Intn(s.Len(solution.A)), rng.Intn(s.Len(solution.B)))
		}
		c := solution.Cycle(rng.Intn(2))
		L := s.Len(c)
		i, j := rng.Intn(L), rng.Intn(L)
		if i > j {
			i, j = j, i
		}
		m := solution.EdgeExchange(c, i, j)
		if m.Valid(s) {
			return m
		}
	}
}

func TestMoveDelta_MatchesRecomputation(t *testing.T) {
	for _, n := range []int{4, 5, 6, 7, 12, 31, 60} {
		d := euclid(n, int64(n))
		rng := rand.New(rand.NewSource(int64(100 + n)))
		s, err := solution.Random(n, rng)
		require.NoError(t, err)

		for step := 0; step < 500; step++ {
			m := randomMove(s, rng)
			before := s.Cost(d)
			delta := m.Delta(s, d)
			require.NoError(t, m.Apply(s))
			require.Equal(t, s.Cost(d)-before, delta, "n=%d move=%s", n, m)
			require.NoError(t, s.Validate())
		}
	}
}

func TestMove_Valid(t *testing.T) {
	s, err := solution.FromCycles(8, []int{0, 1, 2, 3}, []int{4, 5, 6, 7})
	require.NoError(t, err)

	require.True(t, solution.EdgeExchange(solution.A, 1, 2).Valid(s))
	require.True(t, solution.EdgeExchange(solution.B, 0, 2).Valid(s))
	require.False(t, solution.EdgeExchange(solution.A, 0, 3).Valid(s), "whole cycle")
	require.False(t, solution.EdgeExchange(solution.A, 2, 2).Valid(s))
	require.False(t, solution.EdgeExchange(solution.A, 2, 4).Valid(s))
	require.True(t, solution.InterCycleExchange(3, 0).Valid(s))
	require.False(t, solution.InterCycleExchange(4, 0).Valid(s))

	err = solution.EdgeExchange(solution.A, 0, 3).Apply(s)
	require.ErrorIs(t, err, solution.ErrBadMove)
}

func TestMove_ApplyEdgeExchange(t *testing.T) {
	s, err := solution.FromCycles(10, []int{0, 1, 2, 3, 4}, []int{5, 6, 7, 8, 9})
	require.NoError(t, err)

	require.NoError(t, solution.EdgeExchange(solution.A, 1, 3).Apply(s))
	a, _ := s.Cycles()
	require.Equal(t, []int{0, 3, 2, 1, 4}, a)
	require.True(t, s.HasEdge(0, 3))
	require.True(t, s.HasEdge(1, 4))
	require.False(t, s.HasEdge(0, 1))
	require.NoError(t, s.Validate())
}

func TestMove_Order(t *testing.T) {
	moves := []solution.Move{
		solution.InterCycleExchange(0, 1),
		solution.EdgeExchange(solution.B, 0, 2),
		solution.EdgeExchange(solution.A, 1, 3),
		solution.EdgeExchange(solution.A, 1, 2),
		solution.InterCycleExchange(0, 0),
	}
	require.True(t, moves[3].Less(moves[2]))
	require.True(t, moves[2].Less(moves[1]))
	require.True(t, moves[1].Less(moves[4]))
	require.True(t, moves[4].Less(moves[0]))
	require.False(t, moves[0].Less(moves[0]))

	require.Equal(t, "edge-exchange(B,0,2)", moves[1].String())
	require.Equal(t, "inter-cycle-exchange(0,1)", moves[0].String())
}
