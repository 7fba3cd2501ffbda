package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

// WriteGrid encodes g in format f and writes it to w.
// The output can be re-imported with [ReadGrid].
func WriteGrid(w io.Writer, g grid.Grid, f Format) error {
	doc := document{Cells: g}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatText:
		return writeText(w, g)
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unknown grid format %q", f)
}

// ExportGrid writes g to a file at path, choosing the format from the
// extension. This is a convenience wrapper around [WriteGrid].
func ExportGrid(path string, g grid.Grid) error {
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteGrid(file, g, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeText(w io.Writer, g grid.Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range g {
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}
