package grid

// Board is the presentation-side view of a grid: weights plus a highlight per
// cell. A Board is not safe for concurrent use.
type Board struct {
	cells Grid
	marks [][]Highlight
}

// NewBoard returns an unmarked board over a copy of g.
func NewBoard(g Grid) *Board {
	b := &Board{}
	b.Reset(g)
	return b
}

// Reset replaces the board's weights with a copy of g and clears all marks.
func (b *Board) Reset(g Grid) {
	b.cells = g.Clone()
	b.marks = make([][]Highlight, len(g))
	for r := range b.marks {
		b.marks[r] = make([]Highlight, len(g[r]))
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int { return len(b.cells) }

// Grid returns a copy of the board's weights.
func (b *Board) Grid() Grid { return b.cells.Clone() }

// ValueOf returns the weight at (row, col).
func (b *Board) ValueOf(row, col int) int { return b.cells[row][col] }

// SetValue replaces the weight at (row, col). Existing marks are kept; callers
// that edit weights usually want Clear as well.
func (b *Board) SetValue(row, col, w int) { b.cells[row][col] = w }

// ColorOf returns the highlight of (row, col).
func (b *Board) ColorOf(row, col int) Highlight { return b.marks[row][col] }

// MarkOnPath sets the highlight of (row, col) to h.
func (b *Board) MarkOnPath(row, col int, h Highlight) { b.marks[row][col] = h }

// ApplyPath marks the cell (path[c], c) of every column, from the last column
// to the first, overlaying by on whatever marking the cell already has.
// Entries outside the board are ignored.
func (b *Board) ApplyPath(path []int, by Highlight) {
	for col := len(path) - 1; col >= 0; col-- {
		row := path[col]
		if !b.cells.InBounds(row, col) {
			continue
		}
		b.MarkOnPath(row, col, b.ColorOf(row, col).Overlay(by))
	}
}

// Clear resets every cell to Unmarked.
func (b *Board) Clear() {
	for r := range b.marks {
		for c := range b.marks[r] {
			b.marks[r][c] = Unmarked
		}
	}
}

// Marks returns a copy of the highlight matrix.
func (b *Board) Marks() [][]Highlight {
	out := make([][]Highlight, len(b.marks))
	for r, row := range b.marks {
		out[r] = append([]Highlight(nil), row...)
	}
	return out
}

// Count returns how many cells currently have highlight h.
func (b *Board) Count(h Highlight) int {
	n := 0
	for _, row := range b.marks {
		for _, m := range row {
			if m == h {
				n++
			}
		}
	}
	return n
}

// Reporter receives the total cost of a computed path, keyed by algorithm.
type Reporter interface {
	ReportTotalCost(algorithm string, cost int)
}

// Totals is a Reporter that keeps the last reported cost per algorithm.
type Totals map[string]int

// ReportTotalCost records cost for algorithm.
func (t Totals) ReportTotalCost(algorithm string, cost int) { t[algorithm] = cost }
