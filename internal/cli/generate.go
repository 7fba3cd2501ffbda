package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	gridio "github.com/matzehuels/gridpath/pkg/io"
)

// generateCommand creates the generate command, which writes random grids.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		size      int
		seed      uint64
		maxWeight int
		output    string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random grid file",
		Long: `Write a random N×N grid with weights in [0, max-weight].

The same seed always produces the same grid. The file format follows the
extension of --output; without --output the grid is printed to stdout.`,
		Example: `  gridpath generate -n 10 -o grid.txt
  gridpath generate -n 32 --seed 42 --max-weight 99 -o big.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidateDimension(size, 0); err != nil {
				return err
			}
			if err := errs.ValidateMaxWeight(maxWeight); err != nil {
				return err
			}
			g := grid.Random(size, maxWeight, seed)

			if output == "" {
				f, err := gridio.ParseFormat(format)
				if err != nil {
					return err
				}
				return gridio.WriteGrid(cmd.OutOrStdout(), g, f)
			}

			if err := gridio.ExportGrid(output, g); err != nil {
				return err
			}
			printSuccess("Generated %d×%d grid (seed %d)", size, size, seed)
			printFile(output)
			printNextStep("Solve it", fmt.Sprintf("%s solve %s -a dynamic,greedy --board", appName, output))
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 8, "grid side length")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&maxWeight, "max-weight", grid.DefaultMaxWeight, "largest weight")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json, .toml or .txt)")
	cmd.Flags().StringVar(&format, "format", string(gridio.FormatText), "stdout format when no --output: txt, json, toml")

	return cmd
}
