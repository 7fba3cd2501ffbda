package io

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// ReadGrid decodes a grid in format f from r and validates it.
//
// ReadGrid returns an INVALID_FORMAT error if the content cannot be decoded
// and an INVALID_INPUT error if the decoded grid is empty, not square, or
// holds a negative weight. ReadGrid does not close r.
func ReadGrid(r io.Reader, f Format) (grid.Grid, error) {
	var (
		cells [][]int
		err   error
	)
	switch f {
	case FormatJSON:
		cells, err = readJSON(r)
	case FormatTOML:
		cells, err = readTOML(r)
	case FormatText:
		cells, err = readText(r)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown grid format %q", f)
	}
	if err != nil {
		return nil, err
	}

	g := grid.Grid(cells)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// ImportGrid reads the grid file at path, inferring the format from its
// extension. The error wraps the underlying cause with the file path.
func ImportGrid(path string) (grid.Grid, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "open %s", path)
	}
	defer file.Close()
	return ReadGrid(file, f)
}

func readJSON(r io.Reader) ([][]int, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode json grid")
	}
	return doc.Cells, nil
}

func readTOML(r io.Reader) ([][]int, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode toml grid")
	}
	return doc.Cells, nil
}

func readText(r io.Reader) ([][]int, error) {
	var cells [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "line %d: weight %q", line, f)
			}
			row[i] = v
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "read text grid")
	}
	return cells, nil
}
