package grid

import "math/rand/v2"

// DefaultMaxWeight is the weight ceiling used when none is given.
const DefaultMaxWeight = 9

// Random returns an n×n grid with weights drawn uniformly from [0, maxWeight].
// The same seed always yields the same grid. A negative maxWeight is treated
// as DefaultMaxWeight.
func Random(n, maxWeight int, seed uint64) Grid {
	if maxWeight < 0 {
		maxWeight = DefaultMaxWeight
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g := New(n)
	for r := range g {
		for c := range g[r] {
			g[r][c] = rng.IntN(maxWeight + 1)
		}
	}
	return g
}
