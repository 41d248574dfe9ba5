package construct_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/twocycle/distance"
)

// fromPoints builds a Dense of rounded Euclidean distances.
func fromPoints(pts [][2]float64) *distance.Dense {
	rows := make([][]int, len(pts))
	for i := range rows {
		rows[i] = make([]int, len(pts))
		for j := range rows[i] {
			rows[i][j] = int(math.Round(math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])))
		}
	}
	d, err := distance.NewDense(rows)
	if err != nil {
		panic(err)
	}
	return d
}

// euclid returns a seeded random Euclidean instance.
func euclid(n int, seed int64) *distance.Dense {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 1000, rng.Float64() * 1000}
	}
	return fromPoints(pts)
}

// twoTriangles is the 6-vertex scenario: two tight triangles 100 apart.
// Its optimum is 56 (each triangle costs 10+9+9).
func twoTriangles() *distance.Dense {
	return fromPoints([][2]float64{{0, 0}, {10, 0}, {5, 8}, {100, 0}, {110, 0}, {105, 8}})
}

// bruteForce6 returns the optimal two-3-cycle cost of a 6-vertex instance.
// Every triangle has a single cycle cost, so enumerating the vertex split suffices.
func bruteForce6(d *distance.Dense) int {
	tri := func(a, b, c int) int { return d.At(a, b) + d.At(b, c) + d.At(c, a) }
	best := math.MaxInt
	for mask := 0; mask < 1<<6; mask++ {
		var in, out []int
		for v := 0; v < 6; v++ {
			if mask&(1<<v) != 0 {
				in = append(in, v)
			} else {
				out = append(out, v)
			}
		}
		if len(in) != 3 {
			continue
		}
		if c := tri(in[0], in[1], in[2]) + tri(out[0], out[1], out[2]); c < best {
			best = c
		}
	}
	return best
}
