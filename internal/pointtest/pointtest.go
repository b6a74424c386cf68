// Package pointtest generates deterministic point clouds for tests and
// benchmarks: cubic lattices, axis-aligned star shells and uniform random
// fills.
package pointtest

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Lattice returns points on a cubic lattice with the given step inside the
// box [lo, hi]. The center of the box carries a point and the others shift
// from it by multiples of step in every direction, so the lattice is
// symmetric around the center.
func Lattice(lo, hi [3]float64, step float64) [][3]float64 {
	var center, below, above [3]float64
	for a := 0; a < 3; a++ {
		center[a] = (lo[a] + hi[a]) / 2
		below[a] = math.Floor((center[a] - lo[a]) / step)
		above[a] = math.Floor((hi[a] - center[a]) / step)
	}

	var points [][3]float64
	for i := -int(below[0]); i <= int(above[0]); i++ {
		for j := -int(below[1]); j <= int(above[1]); j++ {
			for k := -int(below[2]); k <= int(above[2]); k++ {
				points = append(points, [3]float64{
					center[0] + float64(i)*step,
					center[1] + float64(j)*step,
					center[2] + float64(k)*step,
				})
			}
		}
	}
	return points
}

// Star returns the six points sitting at the given distance from center
// along the positive and negative coordinate axes. Combine shells of
// decreasing radius around a common center to build clouds whose pair
// distances are known exactly.
func Star(center [3]float64, radius float64) [][3]float64 {
	points := make([][3]float64, 0, 6)
	for a := 0; a < 3; a++ {
		for _, sign := range []float64{1, -1} {
			p := center
			p[a] += sign * radius
			points = append(points, p)
		}
	}
	return points
}

// Generator draws seeded, reproducible uniform random points inside a box.
type Generator struct {
	x, y, z distuv.Uniform
}

// NewGenerator creates a generator for the box [lo, hi] with the given seed.
func NewGenerator(seed uint64, lo, hi [3]float64) *Generator {
	src := rand.NewPCG(seed, seed)
	return &Generator{
		x: distuv.Uniform{Min: lo[0], Max: hi[0], Src: src},
		y: distuv.Uniform{Min: lo[1], Max: hi[1], Src: src},
		z: distuv.Uniform{Min: lo[2], Max: hi[2], Src: src},
	}
}

// Points draws n independent uniform points.
func (g *Generator) Points(n int) [][3]float64 {
	points := make([][3]float64, n)
	for i := range points {
		points[i] = [3]float64{g.x.Rand(), g.y.Rand(), g.z.Rand()}
	}
	return points
}
