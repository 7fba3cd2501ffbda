package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file path (or base path for multiple outputs)
	formats    string  // comma-separated output formats
	vizType    string  // board or nodelink
	algorithms string  // comma-separated algorithm names
	cellSize   float64 // cell side in SVG units (board view)
	pathLines  bool    // draw path polylines over the board
	lattice    bool    // draw every allowed move (nodelink view)
	scale      float64 // PNG scale factor
	noCache    bool    // disable caching
	refresh    bool    // recompute even if cached
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	src := newGridSource()
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [grid-file]",
		Short: "Render a solved grid to SVG, PNG, PDF, JSON or DOT",
		Long: `Render a solved grid.

The board view draws every cell coloured by the paths that cross it: red for
dynamic, blue for greedy and magenta where both meet. The nodelink view draws
the grid as a lattice graph with the paths as coloured edges.

PNG and PDF output require rsvg-convert on PATH.`,
		Example: `  gridpath render grid.txt -a dynamic,greedy
  gridpath render --random 16 -f svg,png -o board
  gridpath render grid.json -t nodelink --lattice -f svg,dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, label, err := src.load(args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), g, label, opts)
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", pipeline.DefaultVizType, "visualization type: board, nodelink")
	cmd.Flags().StringVarP(&opts.algorithms, "algorithm", "a", "", "algorithm(s): dynamic (default), greedy (comma-separated)")
	cmd.Flags().Float64Var(&opts.cellSize, "cell-size", 0, "cell side length in the board view")
	cmd.Flags().BoolVar(&opts.pathLines, "lines", false, "draw path lines over the board")
	cmd.Flags().BoolVar(&opts.lattice, "lattice", false, "draw all allowed moves (nodelink)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")

	return cmd
}

// renderPipelineOptions merges flags over the config file defaults.
func (c *CLI) renderPipelineOptions(opts renderOpts) pipeline.Options {
	po := pipeline.Options{
		Algorithms: splitList(opts.algorithms),
		Refresh:    opts.refresh,
		VizType:    opts.vizType,
		Formats:    splitList(opts.formats),
		CellSize:   opts.cellSize,
		PathLines:  opts.pathLines,
		Lattice:    opts.lattice,
		Scale:      opts.scale,
		Logger:     c.Logger,
	}
	if len(po.Algorithms) == 0 {
		po.Algorithms = c.Config.Solve.Algorithms
	}
	if len(po.Formats) == 0 {
		po.Formats = c.Config.Render.Formats
	}
	if po.CellSize <= 0 {
		po.CellSize = c.Config.Render.CellSize
	}
	return po
}

// runRender solves g and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, g grid.Grid, label string, opts renderOpts) error {
	po := c.renderPipelineOptions(opts)
	if err := po.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", po.VizType))
	spinner.Start()

	res, err := runner.Execute(ctx, g, po)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	paths, err := writeArtifacts(res.Artifacts, po.Formats, label, opts.output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s view", po.VizType)
	for _, p := range paths {
		printFile(p)
	}
	printStats(res.Stats.Size, res.Stats.SolveTime+res.Stats.RenderTime, res.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes artifacts in the order of formats and returns the
// written paths.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	base := basePath(output, input)
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
