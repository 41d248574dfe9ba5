package construct_test

import (
	"fmt"

	"github.com/katalvlaran/twocycle/construct"
)

// ExampleRegret_Build seeds the cycles with the farthest pair, so no random
// generator is needed, and separates the two triangles.
func ExampleRegret_Build() {
	d := twoTriangles()

	s, err := construct.NewWeightedRegret(construct.StartMaxPair).Build(d, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Cost(d), s.Len(0), s.Len(1))
	// Output:
	// 56 3 3
}
