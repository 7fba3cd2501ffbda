package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
)

// DefaultCellSize is the side of one cell in SVG user units.
const DefaultCellSize = 40.0

const (
	svgMargin     = 20.0
	legendLineH   = 22.0
	legendSwatchW = 14.0
)

const cellCSS = `
    .cell { stroke: ` + ColorBorder + `; stroke-width: 1; }
    .weight { font-family: ui-monospace, monospace; text-anchor: middle; dominant-baseline: central; }
    .path { fill: none; stroke-width: 3; stroke-linecap: round; stroke-linejoin: round; opacity: 0.6; }
    .legend { font-family: ui-sans-serif, sans-serif; font-size: 14px; dominant-baseline: central; }`

// SVGOption configures board rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize  float64
	solutions []pathsolve.Result
	lines     bool
}

// WithCellSize sets the cell side length (default [DefaultCellSize]).
func WithCellSize(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.cellSize = s
		}
	}
}

// WithSolutions adds a cost legend entry per result.
func WithSolutions(results ...pathsolve.Result) SVGOption {
	return func(r *svgRenderer) { r.solutions = results }
}

// WithPathLines draws each solution as a polyline through its cell centres.
func WithPathLines() SVGOption { return func(r *svgRenderer) { r.lines = true } }

// RenderSVG draws the board: one rect per cell filled by its highlight, the
// weight centred in it, and a legend below the grid.
func RenderSVG(b *grid.Board, opts ...SVGOption) []byte {
	r := svgRenderer{cellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&r)
	}

	n := b.Size()
	side := float64(n) * r.cellSize
	width := side + 2*svgMargin
	height := side + 2*svgMargin + float64(len(r.solutions))*legendLineH

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", cellCSS)

	r.renderCells(&buf, b)
	if r.lines {
		r.renderLines(&buf)
	}
	r.renderLegend(&buf, side)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderCells(buf *bytes.Buffer, b *grid.Board) {
	fontSize := r.cellSize * 0.4
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			h := b.ColorOf(row, col)
			x := svgMargin + float64(col)*r.cellSize
			y := svgMargin + float64(row)*r.cellSize
			fmt.Fprintf(buf, `  <rect id="cell-%d-%d" class="cell %s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				row, col, h, x, y, r.cellSize, r.cellSize, Fill(h))
			fmt.Fprintf(buf, `  <text class="weight" x="%.1f" y="%.1f" font-size="%.1f" fill="%s">%d</text>`+"\n",
				x+r.cellSize/2, y+r.cellSize/2, fontSize, TextColor(h), b.ValueOf(row, col))
		}
	}
}

func (r *svgRenderer) renderLines(buf *bytes.Buffer) {
	for _, s := range r.solutions {
		buf.WriteString(`  <polyline class="path" points="`)
		for col, row := range s.Path {
			if col > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%.1f,%.1f",
				svgMargin+(float64(col)+0.5)*r.cellSize,
				svgMargin+(float64(row)+0.5)*r.cellSize)
		}
		fmt.Fprintf(buf, `" stroke="%s"/>`+"\n", AlgorithmColor(s.Algorithm))
	}
}

func (r *svgRenderer) renderLegend(buf *bytes.Buffer, side float64) {
	top := svgMargin + side + legendLineH/2
	for i, s := range r.solutions {
		y := top + float64(i)*legendLineH
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			svgMargin, y-legendSwatchW/2, legendSwatchW, legendSwatchW, AlgorithmColor(s.Algorithm))
		fmt.Fprintf(buf, `  <text class="legend" x="%.1f" y="%.1f">%s: %d</text>`+"\n",
			svgMargin+legendSwatchW+6, y, s.Algorithm, s.MinCost)
	}
}
