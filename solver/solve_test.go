package solver_test

import (
	"slices"
	"testing"
	"time"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/search"
	"github.com/katalvlaran/twocycle/solution"
	"github.com/katalvlaran/twocycle/solver"
	"github.com/stretchr/testify/require"
)

func TestSolve_InstanceErrors(t *testing.T) {
	opts := solver.DefaultOptions()
	opts.Logger = quiet

	_, err := solver.Solve(nil, opts)
	require.ErrorIs(t, err, distance.ErrNilMatrix)

	small, err := distance.NewDense([][]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)
	_, err = solver.Solve(small, opts)
	require.ErrorIs(t, err, distance.ErrTooFewVertices)

	asym, err := distance.NewDense([][]int{{0, 1, 2, 3}, {1, 0, 4, 5}, {2, 4, 0, 6}, {3, 5, 7, 0}})
	require.NoError(t, err)
	_, err = solver.Solve(asym, opts)
	require.ErrorIs(t, err, distance.ErrAsymmetry)
}

func TestSolve_OptionErrors(t *testing.T) {
	d := euclid(20, 1)
	tests := []struct {
		name   string
		mutate func(*solver.Options)
		want   error
	}{
		{"candidate_k", func(o *solver.Options) { o.CandidateK = 0 }, solver.ErrBadOption},
		{"iterations", func(o *solver.Options) { o.Iterations = 0 }, solver.ErrBadOption},
		{"time_limit", func(o *solver.Options) { o.Algo, o.TimeLimit = solver.ILS, 0 }, solver.ErrBadOption},
		{"n_moves", func(o *solver.Options) { o.Algo, o.NMoves = solver.ILS, 0 }, solver.ErrBadOption},
		{"destroy_fraction rounds to zero", func(o *solver.Options) { o.Algo, o.DestroyFraction = solver.LNS, 0.04 }, solver.ErrBadOption},
		{"destroy_fraction one", func(o *solver.Options) { o.Algo, o.DestroyFraction = solver.LNSa, 1 }, solver.ErrBadOption},
		{"pop_size", func(o *solver.Options) { o.Algo, o.PopSize = solver.HAE, 1 }, solver.ErrBadOption},
		{"min_diff", func(o *solver.Options) { o.Algo, o.MinDiff = solver.HAE, -1 }, solver.ErrBadOption},
		{"max_iterations", func(o *solver.Options) { o.MaxIterations = -3 }, solver.ErrBadOption},
		{"algo", func(o *solver.Options) { o.Algo = solver.Algo(99) }, solver.ErrUnknownAlgo},
		{"initial", func(o *solver.Options) { o.Initial = solver.Initial(7) }, solver.ErrUnknownInitial},
		{"search", func(o *solver.Options) { o.Search = search.Variant(9) }, solver.ErrBadOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := solver.DefaultOptions()
			opts.Logger = quiet
			tt.mutate(&opts)
			_, err := solver.Solve(d, opts)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMSLS_BestOfN(t *testing.T) {
	d := euclid(60, 3)
	opts := capped(solver.MSLS, 11, 15)

	res, err := solver.Solve(d, opts)
	require.NoError(t, err)
	require.Equal(t, 15, res.Iterations)
	require.Len(t, res.Trace, 15)
	require.Equal(t, slices.Min(res.Trace), res.Cost)
	for _, c := range res.Trace {
		require.LessOrEqual(t, res.Cost, c)
	}
	require.NoError(t, res.Solution.Validate())
	require.Equal(t, res.Solution.Cost(d), res.Cost)
}

func TestDrivers_FeasibleAndAccepting(t *testing.T) {
	d := euclid(60, 5)
	for _, algo := range solver.Algos() {
		t.Run(algo.String(), func(t *testing.T) {
			res, err := solver.Solve(d, capped(algo, 2, 12))
			require.NoError(t, err)
			require.Equal(t, algo, res.Algo)
			require.Equal(t, 12, res.Iterations)
			require.NoError(t, res.Solution.Validate())
			require.Equal(t, res.Solution.Cost(d), res.Cost)
			require.Len(t, res.A, solution.TargetSize(60, solution.A))
			require.Len(t, res.B, solution.TargetSize(60, solution.B))
			if algo != solver.HAE {
				// HAE drops children that fail the MinDiff gate, even cheap ones.
				require.LessOrEqual(t, res.Cost, slices.Min(res.Trace))
			}
		})
	}
}

func TestDrivers_SearchVariants(t *testing.T) {
	d := euclid(30, 6)
	for _, v := range search.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			opts := capped(solver.ILS, 4, 6)
			opts.Search = v

			res, err := solver.Solve(d, opts)
			require.NoError(t, err)
			require.NoError(t, res.Solution.Validate())
			require.Equal(t, res.Solution.Cost(d), res.Cost)
			require.LessOrEqual(t, res.Cost, slices.Min(res.Trace))
		})
	}
}

func TestDrivers_Reproducible(t *testing.T) {
	d := euclid(50, 8)
	for _, algo := range solver.Algos() {
		t.Run(algo.String(), func(t *testing.T) {
			opts := capped(algo, 42, 10)
			opts.Initial = solver.InitialWeightedRegret

			r1, err := solver.Solve(d, opts)
			require.NoError(t, err)
			r2, err := solver.Solve(d, opts)
			require.NoError(t, err)

			require.Equal(t, r1.A, r2.A)
			require.Equal(t, r1.B, r2.B)
			require.Equal(t, r1.Cost, r2.Cost)
			require.Equal(t, r1.Iterations, r2.Iterations)
			require.Equal(t, r1.Trace, r2.Trace)
			require.Equal(t, r1.Population, r2.Population)
		})
	}
}

func TestHAE_ParallelReproducible(t *testing.T) {
	d := euclid(50, 13)
	opts := capped(solver.HAE, 9, 13)
	opts.Workers = 4

	r1, err := solver.Solve(d, opts)
	require.NoError(t, err)
	r2, err := solver.Solve(d, opts)
	require.NoError(t, err)

	require.Equal(t, 13, r1.Iterations)
	require.Len(t, r1.Trace, 13)
	require.Equal(t, r1.Trace, r2.Trace)
	require.Equal(t, r1.A, r2.A)
	require.Equal(t, r1.Cost, r2.Cost)
}

func TestHAE_PopulationDiversity(t *testing.T) {
	d := euclid(60, 17)
	for _, withLocal := range []bool{true, false} {
		opts := capped(solver.HAE, 5, 40)
		opts.WithLocal = withLocal
		opts.MinDiff = 40

		res, err := solver.Solve(d, opts)
		require.NoError(t, err)
		require.Len(t, res.Population, opts.PopSize)
		for i := range res.Population {
			for j := i + 1; j < len(res.Population); j++ {
				diff := res.Population[i] - res.Population[j]
				if diff < 0 {
					diff = -diff
				}
				require.GreaterOrEqual(t, diff, opts.MinDiff)
			}
		}
		require.Equal(t, slices.Min(res.Population), res.Cost)
	}
}

func TestHAE_UniformInstance(t *testing.T) {
	// Every two-cycle solution of a uniform instance costs the same, so no
	// two members can ever keep a positive MinDiff apart.
	rows := make([][]int, 6)
	for i := range rows {
		rows[i] = make([]int, 6)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 10
			}
		}
	}
	d, err := distance.NewDense(rows)
	require.NoError(t, err)

	opts := capped(solver.HAE, 1, 5)
	opts.MinDiff = 1
	opts.PopSize = 2
	opts.DestroyFraction = 0.2

	res, err := solver.Solve(d, opts)
	require.NoError(t, err)
	require.Equal(t, 60, res.Cost)
	require.Equal(t, []int{60, 60}, res.Population)
	require.Equal(t, 5, res.Iterations)
}

func TestHAE_DefaultsOnSmallInstance(t *testing.T) {
	// 12 points in a 100×100 box: local optima are far fewer than 20 costs
	// spaced 40 apart.
	d := euclidIn(12, 3, 100, 100)
	opts := solver.DefaultOptions()
	opts.Algo = solver.HAE
	opts.TimeLimit = 200 * time.Millisecond
	opts.Logger = quiet

	res, err := solver.Solve(d, opts)
	require.NoError(t, err)
	require.Len(t, res.Population, opts.PopSize)
	require.Equal(t, slices.Min(res.Population), res.Cost)
	require.Equal(t, res.Cost, res.Solution.Cost(d))
	require.NoError(t, res.Solution.Validate())
}

func TestTimedDriver_StopsAtDeadline(t *testing.T) {
	d := euclid(40, 2)
	opts := solver.DefaultOptions()
	opts.Algo = solver.ILS
	opts.TimeLimit = 50 * time.Millisecond
	opts.Logger = quiet

	res, err := solver.Solve(d, opts)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Elapsed, opts.TimeLimit)
	require.Less(t, res.Elapsed, 10*time.Second)
	require.Positive(t, res.Iterations)
}

func TestParseAlgo(t *testing.T) {
	for _, a := range solver.Algos() {
		got, err := solver.ParseAlgo(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
	got, err := solver.ParseAlgo(" LNSa ")
	require.NoError(t, err)
	require.Equal(t, solver.LNSa, got)

	_, err = solver.ParseAlgo("sa")
	require.ErrorIs(t, err, solver.ErrUnknownAlgo)

	var a solver.Algo
	require.NoError(t, a.UnmarshalText([]byte("hae")))
	require.Equal(t, solver.HAE, a)
}

func TestDeriveSeed(t *testing.T) {
	require.Equal(t, solver.DeriveSeed(7, 3), solver.DeriveSeed(7, 3))
	require.NotEqual(t, solver.DeriveSeed(7, 3), solver.DeriveSeed(7, 4))
	require.NotEqual(t, solver.DeriveSeed(7, 3), solver.DeriveSeed(8, 3))
}
