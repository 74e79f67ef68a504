// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpatrol/cycle"
	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/internal/logging"
)

// newTraceCmd creates the trace command.
func (a *App) newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace <file>",
		Short: "Print every state of the unmodified patrol",
		Long: `Print one line per recorded state as "x y Facing", then the outcome.
A looping patrol stops at the first repeated state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			g, err := grid.Parse(text)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(a.stdout)
			res, err := cycle.Traverse(g, cycle.WithoutTrace(), cycle.WithOnState(func(s grid.Agent) {
				fmt.Fprintln(w, s)
			}))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s after %d states\n", res.Outcome, res.States)

			logging.With(a.logger.Debug(),
				logging.Component("trace"),
				logging.Outcome(res.Outcome.String()),
			).Msg("trace finished")
			return w.Flush()
		},
	}
}
