package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

var snake = grid.Grid{
	{5, 1, 5},
	{1, 5, 1},
	{5, 1, 5},
}

func TestReadGrid(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"cells": [[5,1,5],[1,5,1],[5,1,5]]}`},
		{"toml", FormatTOML, "cells = [\n  [5, 1, 5],\n  [1, 5, 1],\n  [5, 1, 5],\n]\n"},
		{"text", FormatText, "# checkerboard\n5 1 5\n\n1 5 1\n5  1\t5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadGrid(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadGrid: %v", err)
			}
			if !equal(g, snake) {
				t.Errorf("got %v, want %v", g, snake)
			}
		})
	}
}

func TestReadGridErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errs.Code
	}{
		{"malformed json", FormatJSON, `{"cells": [[1,`, errs.ErrCodeInvalidFormat},
		{"malformed toml", FormatTOML, `cells = [[1, "x"]]`, errs.ErrCodeInvalidFormat},
		{"bad weight", FormatText, "1 two\n3 4\n", errs.ErrCodeInvalidFormat},
		{"not square", FormatText, "1 2 3\n4 5 6\n", errs.ErrCodeInvalidInput},
		{"empty", FormatJSON, `{"cells": []}`, errs.ErrCodeInvalidInput},
		{"negative", FormatText, "1 -2\n3 4\n", errs.ErrCodeInvalidInput},
		{"unknown format", Format("yaml"), "", errs.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGrid(strings.NewReader(tt.input), tt.format)
			if !errs.Is(err, tt.code) {
				t.Errorf("got %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	g := grid.Random(6, 99, 3)

	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(dir, "grid."+string(f))
			if err := ExportGrid(path, g); err != nil {
				t.Fatalf("ExportGrid: %v", err)
			}
			got, err := ImportGrid(path)
			if err != nil {
				t.Fatalf("ImportGrid: %v", err)
			}
			if !equal(got, g) {
				t.Errorf("round trip changed grid:\ngot  %v\nwant %v", got, g)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGrid(&buf, grid.Grid{{1, 2}, {3, 4}}, FormatText); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "1 2\n3 4\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestImportGridMissingFile(t *testing.T) {
	_, err := ImportGrid(filepath.Join(t.TempDir(), "missing.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("got %v, want FILE_NOT_FOUND", err)
	}
}

func TestImportGridNoExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid")
	if err := os.WriteFile(path, []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ImportGrid(path)
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("got %v, want INVALID_FORMAT", err)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "TOML": FormatTOML, "text": FormatText, "txt": FormatText} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("ParseFormat(csv) should fail")
	}
}

func equal(a, b grid.Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}
