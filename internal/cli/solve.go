// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpatrol/internal/logging"
	"github.com/katalvlaran/gridpatrol/search"
)

// solveOptions holds options for the solve command.
type solveOptions struct {
	workers    int
	jsonOutput bool
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Count visited cells and loop-inducing obstacles",
		Long: `Read a grid and print two numbers: the distinct cells the agent visits
before leaving the grid, and how many single new obstacles would trap it in
a loop instead. Use "-" to read the grid from stdin.

Examples:
  gridpatrol solve input.txt
  gridpatrol solve --workers 4 --json input.txt
  cat input.txt | gridpatrol solve -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return a.solve(cmd.Context(), text, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Worker count (overrides config; 0 keeps the configured value)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the full report as JSON")

	return cmd
}

func (a *App) solve(ctx context.Context, text string, opts *solveOptions) error {
	r, err := search.Analyze(ctx, text, a.searchOptions(opts.workers)...)
	if err != nil {
		logging.With(a.logger.Error(), logging.Component("solve"), logging.ErrorField(err)).Msg("solve failed")
		return err
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	fmt.Fprintf(a.stdout, "visited: %d\n", r.Visited)
	fmt.Fprintf(a.stdout, "loop obstacles: %d\n", r.LoopObstacles)
	return nil
}

// readInput reads a grid from path, or from stdin when path is "-".
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read grid: %w", err)
	}
	return string(data), nil
}
