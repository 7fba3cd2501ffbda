// Package pkg provides the core libraries for gridpath minimum-cost path search.
//
// # Overview
//
// gridpath finds the cheapest left-to-right path through an N×N grid of
// non-negative weights. A path visits one cell per column and moves at most
// one row between neighbouring columns. The pkg directory is organized into
// these areas:
//
//  1. [grid] and [pathsolve] - Domain logic (grids, boards, solvers)
//  2. [cache] and [observability] - Infrastructure (caching, hooks)
//  3. [io] - Grid files in JSON, TOML and plain text
//  4. [render] - Board and node-link visualizations
//  5. [pipeline] - Orchestration (solve → mark → render)
//
// # Architecture
//
// The typical data flow through gridpath:
//
//	grid file / random grid
//	         ↓
//	    [io] package (read and validate)
//	         ↓
//	    [pathsolve] package (dynamic programming or greedy walk)
//	         ↓
//	    [grid.Board] (paths overlaid as highlights)
//	         ↓
//	    [render] package → SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/gridpath/pkg/grid"
//	    "github.com/matzehuels/gridpath/pkg/pathsolve"
//	    "github.com/matzehuels/gridpath/pkg/render"
//	)
//
//	g := grid.Random(8, 9, 42)
//	res, err := pathsolve.Solve(g)
//	if err != nil {
//	    return err
//	}
//
//	board := grid.NewBoard(g)
//	board.ApplyPath(res.Path, grid.MarkedDynamic)
//	svg := render.RenderSVG(board, render.WithSolutions(res))
//
// Most callers go through [pipeline.Runner], which adds caching and renders
// every requested format in one call.
package pkg
