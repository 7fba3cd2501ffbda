package grid

import (
	"math"

	errs "github.com/matzehuels/gridpath/pkg/errors"
)

// Grid is an N×N matrix of non-negative weights, indexed g[row][col].
type Grid [][]int

// New returns an n×n grid of zero weights.
func New(n int) Grid {
	g := make(Grid, n)
	for r := range g {
		g[r] = make([]int, n)
	}
	return g
}

// Size returns N, the number of rows (and columns) of a square grid.
func (g Grid) Size() int { return len(g) }

// Value returns the weight at (row, col).
func (g Grid) Value(row, col int) int { return g[row][col] }

// Column returns a copy of column col.
func (g Grid) Column(col int) []int {
	out := make([]int, len(g))
	for r := range g {
		out[r] = g[r][col]
	}
	return out
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Validate reports whether g can be solved. It returns an error with code
// INVALID_INPUT when g is empty, not square, holds a negative weight, or holds
// a weight so large that N of them could overflow an int accumulator.
func (g Grid) Validate() error {
	n := len(g)
	if n == 0 {
		return errs.New(errs.ErrCodeInvalidInput, "grid is empty")
	}

	limit := math.MaxInt / n
	for r, row := range g {
		if len(row) != n {
			return errs.New(errs.ErrCodeInvalidInput, "grid is not square: row %d has %d cells, want %d", r, len(row), n)
		}
		for c, w := range row {
			if w < 0 {
				return errs.New(errs.ErrCodeInvalidInput, "negative weight %d at (%d, %d)", w, r, c)
			}
			if w > limit {
				return errs.New(errs.ErrCodeInvalidInput, "weight %d at (%d, %d) may overflow a path over %d columns", w, r, c, n)
			}
		}
	}
	return nil
}

// InBounds reports whether (row, col) addresses a cell of g.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g)
}
