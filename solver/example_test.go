package solver_test

import (
	"fmt"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solver"
)

// ExampleSolve runs three drivers on two triangles 100 units apart. A single
// inter-cycle exchange fixes any mixed split, so every driver finds 56.
func ExampleSolve() {
	d, _ := distance.NewDense([][]int{
		{0, 10, 9, 100, 110, 105},
		{10, 0, 9, 90, 100, 95},
		{9, 9, 0, 95, 105, 100},
		{100, 90, 95, 0, 10, 9},
		{110, 100, 105, 10, 0, 9},
		{105, 95, 100, 9, 9, 0},
	})

	for _, algo := range []solver.Algo{solver.MSLS, solver.ILS, solver.LNS} {
		opts := solver.DefaultOptions()
		opts.Algo = algo
		opts.Iterations = 5
		opts.MaxIterations = 5
		opts.Seed = 42
		opts.Logger = quiet

		res, err := solver.Solve(d, opts)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(res.Algo, res.Cost, len(res.A), len(res.B))
	}
	// Output:
	// msls 56 3 3
	// ils 56 3 3
	// lns 56 3 3
}
