// Package pipeline provides the solve → mark → render pipeline for gridpath.
//
// This package implements the complete pipeline used by the CLI, the
// interactive board and the HTTP API. By centralizing this logic, every entry
// point caches, logs and reports costs the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Solve: run each requested algorithm on the grid (cached per algorithm)
//  2. Mark: overlay the paths on a [grid.Board] in request order
//  3. Render: generate artifacts in the requested formats (cached per format)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, g, pipeline.Options{
//	    Algorithms: []string{"dynamic", "greedy"},
//	    Formats:    []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Solve only:
//
//	res, err := runner.Solve(ctx, g, "dynamic")
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpath/pkg/cache"
	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
	"github.com/matzehuels/gridpath/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, TUI and API
// =============================================================================

const (
	// DefaultVizType is the default visualization type.
	DefaultVizType = VizTypeBoard

	// DefaultCellSize is the default cell side in the board view.
	DefaultCellSize = render.DefaultCellSize

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// DefaultAlgorithms is used when no algorithm is requested.
var DefaultAlgorithms = []string{string(pathsolve.AlgorithmDynamic)}

// Visualization types.
const (
	VizTypeBoard    = "board"
	VizTypeNodelink = "nodelink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeBoard:    true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Solve options
	Algorithms []string `json:"algorithms,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`

	// Render options
	VizType   string   `json:"viz_type,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	CellSize  float64  `json:"cell_size,omitempty"`
	PathLines bool     `json:"path_lines,omitempty"`
	Lattice   bool     `json:"lattice,omitempty"`
	Scale     float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger   `json:"-"`
	Reporter grid.Reporter `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Board holds the grid with every requested path overlaid.
	Board *grid.Board

	// GridHash is the content hash of the grid.
	GridHash string

	// Solutions are the solver results in request order.
	Solutions []pathsolve.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Size       int
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHits int  // Number of algorithms answered from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errs.New(errs.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: board, nodelink)", vizType)
	}
	return nil
}

// ValidateAlgorithm checks that an algorithm is registered.
func ValidateAlgorithm(name string) error {
	_, err := pathsolve.Lookup(name)
	return err
}

// ValidateAlgorithms checks every name and rejects duplicates, which would
// overlay the same path twice.
func ValidateAlgorithms(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if err := ValidateAlgorithm(name); err != nil {
			return err
		}
		if seen[name] {
			return errs.New(errs.ErrCodeInvalidAlgorithm, "algorithm %q requested twice", name)
		}
		seen[name] = true
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSolve validates and sets defaults for solving.
func (o *Options) ValidateForSolve() error {
	if len(o.Algorithms) == 0 {
		o.Algorithms = append([]string(nil), DefaultAlgorithms...)
	}
	o.setLogger()
	return ValidateAlgorithms(o.Algorithms)
}

// SetRenderDefaults sets default values for rendering. An empty Formats
// list is kept: Execute then solves without rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		VizType:    o.VizType,
		Algorithms: o.Algorithms,
		CellSize:   o.CellSize,
		PathLines:  o.PathLines,
		Lattice:    o.Lattice,
		Scale:      o.Scale,
	}
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
