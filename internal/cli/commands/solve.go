package commands

import (
	"github.com/spf13/cobra"

	"github.com/ib-77/almanac/internal/cli/config"
	"github.com/ib-77/almanac/internal/solve"
	"github.com/ib-77/almanac/pkg/rop/lite"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the closest destination for the seeds",
		Long: `Read an almanac document and print the lowest value reachable after the
last stage, reading the seeds as single values, as (start, length) pairs,
or both.`,
		Example: `  almanac solve input.txt
  almanac solve --mode ranges --workers 4 input.txt
  cat input.txt | almanac solve -o table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			modes, err := cfg.Modes()
			if err != nil {
				return err
			}
			in, err := openInput(cmd, args, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			ctx := lite.WithLines(cmd.Context(), cfg.Workers)
			rep, err := solve.New(logger).Run(ctx, in, modes...)
			if err != nil {
				return err
			}
			return renderer(cmd, cfg).Report(rep)
		},
	}
}
