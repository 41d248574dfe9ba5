package construct_test

import (
	"testing"

	"github.com/katalvlaran/twocycle/construct"
	"github.com/katalvlaran/twocycle/solution"
	"github.com/stretchr/testify/require"
)

// fiveVertex is the regret ranking instance:
//
//	     0   1   2   3   4
//	0 [  0  60  36  51  98 ]
//	1 [ 60   0  36  71  50 ]
//	2 [ 36  36   0  36  63 ]
//	3 [ 51  71  36   0  81 ]
//	4 [ 98  50  63  81   0 ]
//
// The farthest pair is (0, 4): A = [0], B = [4]. First round costs
// (c1, c2): v1 (100 in B, 120 in A), v2 (72 A, 126 B), v3 (102 A, 162 B).
func fiveVertex() [][2]float64 {
	return [][2]float64{{0, 0}, {60, 0}, {30, 20}, {10, 50}, {90, 40}}
}

func TestRegret_FiveVertexOrder(t *testing.T) {
	d := fromPoints(fiveVertex())

	tests := []struct {
		name  string
		r     construct.Regret
		order []construct.Insertion
		a, b  []int
	}{
		{
			// Regrets 20, 54, 60: v3 first. Then A = [0 3]: v2 has
			// regret 126-21 = 105 against 20 for v1.
			name: "regret2",
			r:    construct.NewRegret2(construct.StartMaxPair),
			order: []construct.Insertion{
				{Vertex: 3, Cycle: solution.A, Pos: 1, Cost: 102},
				{Vertex: 2, Cycle: solution.A, Pos: 1, Cost: 21},
				{Vertex: 1, Cycle: solution.B, Pos: 1, Cost: 100},
			},
			a: []int{0, 2, 3},
			b: []int{4, 1},
		},
		{
			// Scores regret-c1: -80, -18, -42: v2 first. Then A = [0 2]:
			// v3 scores (162-51)-51 = 60 against (100-60)-60 = -20 for v1.
			name: "weighted",
			r:    construct.NewWeightedRegret(construct.StartMaxPair),
			order: []construct.Insertion{
				{Vertex: 2, Cycle: solution.A, Pos: 1, Cost: 72},
				{Vertex: 3, Cycle: solution.A, Pos: 1, Cost: 51},
				{Vertex: 1, Cycle: solution.B, Pos: 1, Cost: 100},
			},
			a: []int{0, 3, 2},
			b: []int{4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := solution.NewPartial(5)
			require.NoError(t, err)
			require.NoError(t, p.Insert(solution.A, 0, 0))
			require.NoError(t, p.Insert(solution.B, 0, 4))

			got, err := tt.r.Repair(p, d)
			require.NoError(t, err)
			require.Equal(t, tt.order, got)

			s, err := p.Complete()
			require.NoError(t, err)
			a, b := s.Cycles()
			require.Equal(t, tt.a, a)
			require.Equal(t, tt.b, b)
			require.Equal(t, 223, s.Cost(d))

			// Build with the deterministic start reproduces the repair.
			built, err := tt.r.Build(d, nil)
			require.NoError(t, err)
			require.Equal(t, s.String(), built.String())
		})
	}
}

func TestRegret_RepairNoop(t *testing.T) {
	d := euclid(8, 2)
	s, err := solution.FromCycles(8, []int{0, 1, 2, 3}, []int{4, 5, 6, 7})
	require.NoError(t, err)

	got, err := construct.NewWeightedRegret(construct.StartFarthest).Repair(solution.PartialOf(s), d)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, "A[0 1 2 3] B[4 5 6 7]", s.String())
}

func TestRegret_RepairRespectsCaps(t *testing.T) {
	d := euclid(21, 9)
	s, err := solution.FromCycles(21,
		[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20})
	require.NoError(t, err)

	p := solution.PartialOf(s)
	for _, v := range []int{1, 2, 3, 4, 5, 6, 12} {
		require.NoError(t, p.Remove(v))
	}
	got, err := construct.Regret{Weights: construct.Weights{Regret: 0.3, Greedy: 0.7}}.Repair(p, d)
	require.NoError(t, err)
	require.Len(t, got, 7)

	repaired, err := p.Complete()
	require.NoError(t, err)
	require.Equal(t, 11, repaired.Len(solution.A))
	require.Equal(t, 10, repaired.Len(solution.B))
}
