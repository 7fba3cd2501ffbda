// Package nodelink renders a solved board as a node-link diagram.
//
// # Overview
//
// Every cell becomes a Graphviz node laid out left to right, one rank per
// column. The computed paths become edges between consecutive columns,
// coloured by algorithm; a cell shared by two paths is filled magenta just
// like in the board view.
//
// # Usage
//
// Convert a board to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(board, results, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
//   - Lattice: also draw every legal move (r-1, r, r+1) as a faint edge, which
//     shows the search space the solver explored.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
