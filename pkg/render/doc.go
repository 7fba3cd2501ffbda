// Package render turns a solved board into visual and data artifacts.
//
// # Overview
//
// Two views are available:
//
//   - Board view ([RenderSVG]): the grid drawn as coloured cells, each cell
//     filled according to its highlight, with the weight as text and a cost
//     legend per algorithm.
//   - Node-link view (in the [nodelink] subpackage): every cell as a Graphviz
//     node, the computed paths as coloured edges between columns.
//
// [RenderJSON] exports the board, its highlights and the solutions as JSON for
// external tools.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both views use them.
//
//	svg := render.RenderSVG(board, render.WithSolutions(results...))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Colours
//
// Cells take the colour of their highlight (see [Fill]): red for the dynamic
// path, blue for the greedy path, magenta where both paths share a cell.
//
// [nodelink]: github.com/matzehuels/gridpath/pkg/render/nodelink
package render
