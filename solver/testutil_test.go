package solver_test

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solver"
)

// euclid returns a seeded random Euclidean instance on a 4000×2000 field.
func euclid(n int, seed int64) *distance.Dense { return euclidIn(n, seed, 4000, 2000) }

// euclidIn returns a seeded random Euclidean instance on a w×h field.
func euclidIn(n int, seed int64, w, h float64) *distance.Dense {
	rng := rand.New(rand.NewSource(seed))
	xs, ys := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = rng.Float64()*w, rng.Float64()*h
	}
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = int(math.Round(math.Hypot(xs[i]-xs[j], ys[i]-ys[j])))
		}
	}
	d, err := distance.NewDense(rows)
	if err != nil {
		panic(err)
	}
	return d
}

// quiet discards driver logs.
var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// capped returns options for algo with a generous time limit and an
// iteration cap, so that runs are reproducible independent of speed.
func capped(algo solver.Algo, seed int64, maxIter int) solver.Options {
	opts := solver.DefaultOptions()
	opts.Algo = algo
	opts.Seed = seed
	opts.TimeLimit = time.Minute
	opts.MaxIterations = maxIter
	opts.Iterations = maxIter
	opts.PopSize = 8
	opts.RecordTrace = true
	opts.Logger = quiet
	return opts
}
