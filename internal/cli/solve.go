package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pipeline"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	algorithms string // comma-separated algorithm names
	noCache    bool   // bypass the result cache
	refresh    bool   // recompute and overwrite cached results
	jsonOut    bool   // print machine-readable output
	showBoard  bool   // print the highlighted board
	tables     bool   // include cost and predecessor tables in JSON output
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	src := newGridSource()
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Find the minimum-cost path through a grid",
		Long: `Find the minimum-cost path through a grid.

The grid is read from a .json, .toml or .txt file, from stdin ("-"), or
generated with --random. A path visits one cell per column from left to
right and moves at most one row between columns. The dynamic algorithm
returns the optimal path; greedy follows the cheapest neighbour and is
shown for comparison.

Results are cached locally for faster subsequent runs.`,
		Example: `  gridpath solve grid.txt
  gridpath solve --random 12 --seed 7 -a dynamic,greedy --board
  cat grid.json | gridpath solve - --input-format json --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, label, err := src.load(args)
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), g, label, opts)
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.algorithms, "algorithm", "a", "", "algorithm(s): dynamic (default), greedy (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&opts.showBoard, "board", false, "print the board with paths highlighted")
	cmd.Flags().BoolVar(&opts.tables, "tables", false, "include cost and predecessor tables in --json output")

	return cmd
}

// solveOutput is the --json document.
type solveOutput struct {
	Source    string             `json:"source"`
	Size      int                `json:"size"`
	Solutions []solutionOutput   `json:"solutions"`
	Board     [][]grid.Highlight `json:"board"`
}

type solutionOutput struct {
	Algorithm    string  `json:"algorithm"`
	MinCost      int     `json:"min_cost"`
	Path         []int   `json:"path"`
	Costs        [][]int `json:"costs,omitempty"`
	Predecessors [][]int `json:"predecessors,omitempty"`
}

// runSolve solves g with every requested algorithm and prints the results.
func (c *CLI) runSolve(ctx context.Context, w io.Writer, g grid.Grid, label string, opts solveOpts) error {
	algorithms := splitList(opts.algorithms)
	if len(algorithms) == 0 {
		algorithms = c.Config.Solve.Algorithms
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	totals := grid.Totals{}
	res, err := runner.Execute(ctx, g, pipeline.Options{
		Algorithms: algorithms,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
		Reporter:   totals,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %d×%d grid", g.Size(), g.Size()))

	if opts.jsonOut {
		return writeSolveJSON(w, label, res, opts.tables)
	}

	if opts.showBoard {
		fmt.Fprintln(w, boardTable(res.Board, nil))
		fmt.Fprintln(w, legend(res.Board, totals))
		printNewline()
	}
	for _, sol := range res.Solutions {
		printSuccess("%s %s", StyleHighlight.Render(string(sol.Algorithm)), StyleNumber.Render(strconv.Itoa(sol.MinCost)))
		printKeyValue("path", formatPath(sol.Path))
	}
	printStats(res.Stats.Size, res.Stats.SolveTime, res.CacheInfo.SolveHits == len(res.Solutions))
	return nil
}

func writeSolveJSON(w io.Writer, label string, res *pipeline.Result, tables bool) error {
	out := solveOutput{
		Source: label,
		Size:   res.Stats.Size,
		Board:  res.Board.Marks(),
	}
	for _, sol := range res.Solutions {
		so := solutionOutput{
			Algorithm: string(sol.Algorithm),
			MinCost:   sol.MinCost,
			Path:      sol.Path,
		}
		if tables {
			so.Costs = sol.Costs
			so.Predecessors = sol.Predecessors
		}
		out.Solutions = append(out.Solutions, so)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// formatPath renders a path as "(row,col) → (row,col) …".
func formatPath(path []int) string {
	parts := make([]string, len(path))
	for c, r := range path {
		parts[c] = fmt.Sprintf("(%d,%d)", r, c)
	}
	return strings.Join(parts, " "+iconArrow+" ")
}
