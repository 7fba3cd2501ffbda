package io

import (
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/gridpath/pkg/errors"
)

// Format is a grid file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatText Format = "txt"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatTOML, FormatText}

// ParseFormat validates a format name. "text" is accepted for FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "txt", "text":
		return FormatText, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown grid format %q (must be json, toml or txt)", s)
}

// FormatFromPath derives the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer grid format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// document is the shared JSON/TOML shape.
type document struct {
	Cells [][]int `json:"cells" toml:"cells"`
}
