// Package pathsolve computes minimum-cost paths through square weight grids.
//
// A path visits one cell per column, left to right, and between neighbouring
// columns may move up one row, stay, or move down one row. Its cost is the
// sum of the visited weights.
//
// # Algorithms
//
//   - [Solve] ("dynamic"): exact dynamic programming over a cost table and a
//     predecessor table, followed by a back-trace from the cheapest cell of
//     the last column. O(N²) time and memory.
//   - [MinCost]: the same recurrence keeping only two columns. O(N) memory,
//     no path.
//   - [Greedy] ("greedy"): starts at the cheapest cell of the first column and
//     always steps to the cheapest reachable neighbour. O(N) time, not optimal.
//
// # Tie-breaking
//
// Whenever several candidates share the minimal value, the first one in scan
// order wins: predecessor rows are scanned r-1, r, r+1 and end rows 0..N-1,
// always comparing with a strict "<". The result is therefore fully
// reproducible, and two runs over the same grid return identical paths.
//
// # Errors
//
// Every algorithm validates the grid first (see grid.Grid.Validate) and
// returns an error with code INVALID_INPUT from pkg/errors for empty,
// non-square, negative or overflow-prone grids. No partial result is ever
// returned.
//
// # Usage
//
//	res, err := pathsolve.Solve(grid.Grid{
//	    {5, 1, 5},
//	    {1, 5, 1},
//	    {5, 1, 5},
//	})
//	// res.MinCost == 3, res.Path == []int{1, 0, 1}
package pathsolve
