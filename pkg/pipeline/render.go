package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
	"github.com/matzehuels/gridpath/pkg/render"
	"github.com/matzehuels/gridpath/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
// The board view draws SVG itself; the node-link view goes through Graphviz.
// JSON and DOT do not depend on the visualization type.
func Render(ctx context.Context, b *grid.Board, results []pathsolve.Result, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	if opts.IsNodelink() {
		return renderNodelink(ctx, b, results, opts)
	}
	return renderBoard(b, results, opts)
}

func renderBoard(b *grid.Board, results []pathsolve.Result, opts Options) (map[string][]byte, error) {
	svgOpts := []render.SVGOption{
		render.WithCellSize(opts.CellSize),
		render.WithSolutions(results...),
	}
	if opts.PathLines {
		svgOpts = append(svgOpts, render.WithPathLines())
	}

	artifacts := make(map[string][]byte)
	var svg []byte
	svgOnce := func() []byte {
		if svg == nil {
			svg = render.RenderSVG(b, svgOpts...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgOnce()
		case FormatPNG:
			data, err = render.ToPNG(svgOnce(), opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(svgOnce())
		case FormatJSON:
			data, err = render.RenderJSON(b, results)
		case FormatDOT:
			data = []byte(nodelink.ToDOT(b, results, nodelink.Options{Lattice: opts.Lattice}))
		default:
			return nil, fmt.Errorf("unsupported board format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderNodelink(ctx context.Context, b *grid.Board, results []pathsolve.Result, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(b, results, nodelink.Options{Lattice: opts.Lattice})
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot)
		case FormatJSON:
			data, err = render.RenderJSON(b, results)
		case FormatDOT:
			data = []byte(dot)
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
