// Package io provides import and export of weight grids.
//
// # Overview
//
// A grid file holds an N×N matrix of non-negative integer weights. Three
// encodings are supported, chosen by file extension (see [FormatFromPath]):
//
//   - .json: an object with a "cells" array of rows
//   - .toml: a top-level "cells" array of arrays
//   - .txt:  one row per line, weights separated by whitespace
//
// # JSON Format
//
//	{
//	  "cells": [
//	    [5, 1, 5],
//	    [1, 5, 1],
//	    [5, 1, 5]
//	  ]
//	}
//
// # TOML Format
//
//	cells = [
//	  [5, 1, 5],
//	  [1, 5, 1],
//	  [5, 1, 5],
//	]
//
// # Text Format
//
//	5 1 5
//	1 5 1
//	5 1 5
//
// Blank lines and lines starting with '#' are skipped.
//
// # Import
//
// Use [ImportGrid] to read a grid from a file path, or [ReadGrid] to read from
// any io.Reader:
//
//	g, err := io.ImportGrid("board.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoded grids are validated with [grid.Grid.Validate]; a grid that cannot be
// solved is rejected with an INVALID_INPUT error, malformed content with
// INVALID_FORMAT.
//
// # Export
//
// Use [ExportGrid] to write a grid to a file, or [WriteGrid] to write to any
// io.Writer. Exported grids re-import identically.
//
// [grid.Grid.Validate]: github.com/matzehuels/gridpath/pkg/grid.Grid.Validate
package io
