package pathsolve

import (
	"math"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// Greedy walks g from the cheapest cell of column 0, stepping each time to the
// cheapest of the in-bounds cells r-1, r, r+1 of the next column. Ties go to
// the first candidate in that order. The result is a valid path but not
// necessarily a cheapest one; MinCost is the sum of the visited weights.
//
// Complexity: O(N) time after validation, O(N) memory.
func Greedy(g grid.Grid) (Result, error) {
	if err := g.Validate(); err != nil {
		return Result{}, err
	}
	n := g.Size()

	row, cost := 0, math.MaxInt
	for r := 0; r < n; r++ {
		if g[r][0] < cost {
			row, cost = r, g[r][0]
		}
	}

	path := make([]int, n)
	path[0] = row
	for c := 1; c < n; c++ {
		best, next := math.MaxInt, row
		for _, cand := range [3]int{row - 1, row, row + 1} {
			if cand < 0 || cand >= n {
				continue
			}
			if g[cand][c] < best {
				best, next = g[cand][c], cand
			}
		}
		row = next
		cost += best
		path[c] = row
	}

	return Result{Algorithm: AlgorithmGreedy, MinCost: cost, Path: path}, nil
}
