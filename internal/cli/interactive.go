package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// interactiveCommand creates the interactive command, a terminal board with
// a control panel for running both algorithms.
func (c *CLI) interactiveCommand() *cobra.Command {
	src := newGridSource()
	var noCache bool

	cmd := &cobra.Command{
		Use:     "interactive [grid-file]",
		Aliases: []string{"tui"},
		Short:   "Explore a grid in an interactive board",
		Long: `Explore a grid in an interactive terminal board.

Without a grid file a random 8×8 grid is used. Press d to overlay the optimal
path (red) and g to overlay the greedy path (blue); cells on both turn
magenta. Type digits and press enter to change the weight under the cursor.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && src.random == 0 {
				src.random = 8
			}
			g, _, err := src.load(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			// Log lines would tear the alternate screen.
			runner.Logger = log.New(io.Discard)

			m := NewBoardModel(ctx, runner, g, src.seed, src.maxWeight)
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("interactive: %w", err)
			}
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
