package cli

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/render"
)

var (
	styleCellPlain = lipgloss.NewStyle().Padding(0, 1).Foreground(colorWhite)
	styleCellLabel = lipgloss.NewStyle().Padding(0, 1).Foreground(colorDim)
	styleCursor    = lipgloss.NewStyle().Reverse(true).Bold(true)
)

// position is a (row, col) board coordinate.
type position struct {
	row, col int
}

// cellStyle returns the terminal style of a cell in state h. Marked cells
// use the same colours as the rendered board.
func cellStyle(h grid.Highlight) lipgloss.Style {
	if h == grid.Unmarked {
		return styleCellPlain
	}
	return styleCellPlain.
		Background(lipgloss.Color(render.Fill(h))).
		Foreground(lipgloss.Color(render.TextColor(h)))
}

// boardTable renders b as a lipgloss table with row and column labels.
// When cursor is non-nil that cell is drawn reversed.
func boardTable(b *grid.Board, cursor *position) string {
	n := b.Size()

	headers := make([]string, n+1)
	for c := range n {
		headers[c+1] = strconv.Itoa(c)
	}
	rows := make([][]string, n)
	for r := range n {
		row := make([]string, n+1)
		row[0] = strconv.Itoa(r)
		for c := range n {
			row[c+1] = strconv.Itoa(b.ValueOf(r, c))
		}
		rows[r] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return styleCellLabel
			}
			st := cellStyle(b.ColorOf(row, col-1)).Align(lipgloss.Right)
			if cursor != nil && cursor.row == row && cursor.col == col-1 {
				st = st.Inherit(styleCursor)
			}
			return st
		})
	return t.Render()
}

// legend renders one swatch per highlight state present on b, followed by
// the reported totals.
func legend(b *grid.Board, totals grid.Totals) string {
	var parts []string
	for _, h := range []grid.Highlight{grid.MarkedDynamic, grid.MarkedGreedy, grid.MarkedBoth} {
		if b.Count(h) > 0 {
			parts = append(parts, cellStyle(h).Render(h.String()))
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, StyleHighlight.Render(name)+" "+StyleNumber.Render(strconv.Itoa(totals[name])))
	}
	return strings.Join(parts, StyleDim.Render("  ·  "))
}
