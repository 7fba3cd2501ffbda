package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
	"github.com/matzehuels/gridpath/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Lattice draws every legal column-to-column move as a faint edge.
	Lattice bool
}

// ToDOT converts a board and its solutions to Graphviz DOT.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(b *grid.Board, results []pathsolve.Result, opts Options) string {
	n := b.Size()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=18, width=0.6, height=0.4];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	for col := 0; col < n; col++ {
		fmt.Fprintf(&buf, "  subgraph col%d {\n    rank=same;\n", col)
		for row := 0; row < n; row++ {
			h := b.ColorOf(row, col)
			fmt.Fprintf(&buf, "    %s [label=\"%d\", fillcolor=%q, fontcolor=%q];\n",
				nodeID(row, col), b.ValueOf(row, col), render.Fill(h), render.TextColor(h))
		}
		// Invisible chain keeps rows in order inside the rank.
		for row := 1; row < n; row++ {
			fmt.Fprintf(&buf, "    %s -> %s [style=invis];\n", nodeID(row-1, col), nodeID(row, col))
		}
		buf.WriteString("  }\n")
	}

	if opts.Lattice {
		buf.WriteString("\n")
		for col := 1; col < n; col++ {
			for row := 0; row < n; row++ {
				for _, from := range []int{row - 1, row, row + 1} {
					if from < 0 || from >= n {
						continue
					}
					fmt.Fprintf(&buf, "  %s -> %s [color=\"#cccccc\", arrowhead=none];\n", nodeID(from, col-1), nodeID(row, col))
				}
			}
		}
	}

	for _, res := range results {
		buf.WriteString("\n")
		color := render.AlgorithmColor(res.Algorithm)
		for col := 1; col < len(res.Path); col++ {
			fmt.Fprintf(&buf, "  %s -> %s [color=%q, penwidth=3, tooltip=%q];\n",
				nodeID(res.Path[col-1], col-1), nodeID(res.Path[col], col), color, string(res.Algorithm))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(row, col int) string {
	return fmt.Sprintf("r%dc%d", row, col)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel-sized one so browsers and rsvg scale it the same way.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
