package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	gridio "github.com/matzehuels/gridpath/pkg/io"
)

// gridSource holds the flags shared by commands that read a grid: either a
// file argument ("-" for stdin) or a random grid.
type gridSource struct {
	random      int    // side of a random grid; 0 reads a file
	seed        uint64 // seed for the random grid
	maxWeight   int    // upper bound of random weights
	inputFormat string // format of stdin input
	stdin       io.Reader
}

func newGridSource() *gridSource {
	return &gridSource{
		seed:        1,
		maxWeight:   grid.DefaultMaxWeight,
		inputFormat: string(gridio.FormatText),
		stdin:       os.Stdin,
	}
}

// load returns the grid and a short label describing where it came from.
func (s *gridSource) load(args []string) (grid.Grid, string, error) {
	if s.random > 0 {
		if len(args) > 0 {
			return nil, "", errors.New("--random cannot be combined with a grid file")
		}
		if err := errs.ValidateDimension(s.random, 0); err != nil {
			return nil, "", err
		}
		if err := errs.ValidateMaxWeight(s.maxWeight); err != nil {
			return nil, "", err
		}
		label := fmt.Sprintf("random-%d-%d", s.random, s.seed)
		return grid.Random(s.random, s.maxWeight, s.seed), label, nil
	}

	if len(args) == 0 {
		return nil, "", errors.New("a grid file (or - for stdin) is required unless --random is set")
	}
	if args[0] == "-" {
		f, err := gridio.ParseFormat(s.inputFormat)
		if err != nil {
			return nil, "", err
		}
		g, err := gridio.ReadGrid(s.stdin, f)
		return g, "stdin", err
	}
	g, err := gridio.ImportGrid(args[0])
	return g, args[0], err
}

// addFlags registers the grid source flags on cmd.
func (s *gridSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&s.random, "random", 0, "solve a random N×N grid instead of a file")
	cmd.Flags().Uint64Var(&s.seed, "seed", s.seed, "seed for --random")
	cmd.Flags().IntVar(&s.maxWeight, "max-weight", s.maxWeight, "largest weight for --random")
	cmd.Flags().StringVar(&s.inputFormat, "input-format", s.inputFormat, "format of stdin input: txt (default), json, toml")
}
