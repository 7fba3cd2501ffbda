package pathsolve

import (
	"math"

	"github.com/matzehuels/gridpath/pkg/grid"
)

// Solve returns the minimum-cost path through g using dynamic programming.
//
// Algorithm:
//  1. Costs[r][0] = g[r][0] for every row.
//  2. For each column c = 1..N-1 and row r = 0..N-1, scan the in-bounds
//     predecessors r-1, r, r+1 in that order, keeping the first strictly
//     smaller cost: Costs[r][c] = g[r][c] + best, Predecessors[r][c] = bestRow.
//  3. The end row is the first row holding the minimum of column N-1.
//  4. Walk Predecessors back from the end row to rebuild Path.
//
// Complexity: O(N²) time, O(N²) memory.
//
// Errors: INVALID_INPUT if g fails grid.Grid.Validate.
func Solve(g grid.Grid) (Result, error) {
	if err := g.Validate(); err != nil {
		return Result{}, err
	}
	n := g.Size()

	costs := newTable(n, 0)
	preds := newTable(n, -1)

	for r := 0; r < n; r++ {
		costs[r][0] = g[r][0]
	}

	for c := 1; c < n; c++ {
		for r := 0; r < n; r++ {
			best, from := math.MaxInt, r
			if r > 0 && costs[r-1][c-1] < best {
				best, from = costs[r-1][c-1], r-1
			}
			if costs[r][c-1] < best {
				best, from = costs[r][c-1], r
			}
			if r < n-1 && costs[r+1][c-1] < best {
				best, from = costs[r+1][c-1], r+1
			}
			costs[r][c] = g[r][c] + best
			preds[r][c] = from
		}
	}

	end, minCost := 0, math.MaxInt
	for r := 0; r < n; r++ {
		if costs[r][n-1] < minCost {
			end, minCost = r, costs[r][n-1]
		}
	}

	path := make([]int, n)
	path[n-1] = end
	for c := n - 1; c > 0; c-- {
		path[c-1] = preds[path[c]][c]
	}

	return Result{
		Algorithm:    AlgorithmDynamic,
		MinCost:      minCost,
		Path:         path,
		Costs:        costs,
		Predecessors: preds,
	}, nil
}

// MinCost returns the same minimum as Solve while keeping only two columns of
// the cost table. Use it when the path itself is not needed.
//
// Complexity: O(N²) time, O(N) memory.
func MinCost(g grid.Grid) (int, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	n := g.Size()

	prev := g.Column(0)
	curr := make([]int, n)
	for c := 1; c < n; c++ {
		for r := 0; r < n; r++ {
			best := prev[r]
			if r > 0 && prev[r-1] < best {
				best = prev[r-1]
			}
			if r < n-1 && prev[r+1] < best {
				best = prev[r+1]
			}
			curr[r] = g[r][c] + best
		}
		prev, curr = curr, prev
	}

	minCost := math.MaxInt
	for _, v := range prev {
		if v < minCost {
			minCost = v
		}
	}
	return minCost, nil
}

// newTable allocates an n×n table filled with fill.
func newTable(n, fill int) [][]int {
	t := make([][]int, n)
	for r := range t {
		t[r] = make([]int, n)
		if fill != 0 {
			for c := range t[r] {
				t[r][c] = fill
			}
		}
	}
	return t
}
