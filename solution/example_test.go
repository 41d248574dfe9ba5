package solution_test

import (
	"fmt"

	"github.com/katalvlaran/twocycle/distance"
	"github.com/katalvlaran/twocycle/solution"
)

// ExampleMove_Delta repairs a mixed split of two triangles with a single
// inter-cycle exchange, checking the O(1) delta against the full cost.
func ExampleMove_Delta() {
	d, _ := distance.NewDense([][]int{
		{0, 10, 9, 100, 110, 105},
		{10, 0, 9, 90, 100, 95},
		{9, 9, 0, 95, 105, 100},
		{100, 90, 95, 0, 10, 9},
		{110, 100, 105, 10, 0, 9},
		{105, 95, 100, 9, 9, 0},
	})

	s, err := solution.FromCycles(6, []int{0, 1, 3}, []int{2, 4, 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s, s.Cost(d))

	m := solution.InterCycleExchange(2, 0)
	fmt.Println(m, m.Delta(s, d))

	if err = m.Apply(s); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s, s.Cost(d), s.Validate())
	// Output:
	// A[0 1 3] B[2 4 5] 414
	// inter-cycle-exchange(2,0) -358
	// A[0 1 2] B[3 4 5] 56 <nil>
}
