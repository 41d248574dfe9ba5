package solution_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/twocycle/distance"
)

// euclid returns a seeded random Euclidean instance with rounded distances.
func euclid(n int, seed int64) *distance.Dense {
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = rng.Float64() * 1000
		ys[i] = rng.Float64() * 1000
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
