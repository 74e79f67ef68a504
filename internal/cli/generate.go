// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpatrol/builder"
	"github.com/katalvlaran/gridpatrol/internal/logging"
)

// generateOptions holds options for the generate command.
type generateOptions struct {
	width   int
	height  int
	seed    int64
	density float64
}

// newGenerateCmd creates the generate command.
func (a *App) newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit a random grid",
		Long: `Emit a random grid with one agent. The same seed always yields the same
grid; seed 0 picks one from the clock.

Examples:
  gridpatrol generate --width 130 --height 130 --density 0.02 > big.txt
  gridpatrol generate --seed 7 | gridpatrol solve -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := opts.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			text, err := builder.Patrol(opts.width, opts.height,
				builder.WithSeed(seed), builder.WithDensity(opts.density))
			if err != nil {
				return err
			}
			logging.With(a.logger.Debug(),
				logging.Component("generate"),
				logging.GridSize(opts.width, opts.height),
			).Int64("seed", seed).Msg("grid generated")

			_, err = fmt.Fprint(a.stdout, text)
			return err
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 10, "Grid width")
	cmd.Flags().IntVar(&opts.height, "height", 10, "Grid height")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 = from clock)")
	cmd.Flags().Float64Var(&opts.density, "density", 0.1, "Obstacle probability per cell in [0,1)")

	return cmd
}
