// Package grid holds the square weight matrix that paths are computed over,
// and the board that records which cells lie on a computed path.
//
// # Grid
//
// A [Grid] is an N×N matrix of non-negative integer weights indexed
// (row, col). It is the immutable input to the path solvers in
// pkg/pathsolve. [Grid.Validate] rejects grids that cannot be solved: empty
// grids, non-square grids, negative weights, and weights large enough that
// summing one per column could overflow int.
//
// # Board
//
// A [Board] pairs a grid with a per-cell [Highlight]. Solvers never touch the
// board; callers apply a solver's path with [Board.ApplyPath], which walks the
// columns from last to first and overlays the new marking on any earlier one:
//
//	b := grid.NewBoard(g)
//	b.ApplyPath(greedy.Path, grid.MarkedGreedy)
//	b.ApplyPath(optimal.Path, grid.MarkedDynamic) // shared cells become MarkedBoth
//
// # Random grids
//
// [Random] fills a grid from a seeded PCG source so that a seed always
// reproduces the same grid.
package grid
