package commands

import (
	"github.com/spf13/cobra"

	"github.com/ib-77/almanac/internal/cli/config"
	"github.com/ib-77/almanac/internal/cli/output"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:     "trace [file]",
		Short:   "Show a single value after every stage",
		Example: `  almanac trace --seed 79 input.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			_, p, err := load(cmd.Context(), cmd, args, cfg)
			if err != nil {
				return err
			}
			values, err := p.Trace(seed)
			if err != nil {
				return err
			}

			stages := p.Stages()
			steps := make([]output.Step, 0, len(values))
			first := "input"
			if len(stages) > 0 && stages[0].Source != "" {
				first = stages[0].Source
			}
			steps = append(steps, output.Step{Category: first, Value: values[0]})
			for i, s := range stages {
				category := s.Destination
				if category == "" {
					category = s.Name
				}
				steps = append(steps, output.Step{Stage: s.Name, Category: category, Value: values[i+1]})
			}

			config.GetLogger(cmd.Context()).Debug("traced", "seed", seed, "result", values[len(values)-1])
			return renderer(cmd, cfg).Trace(steps)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "value to trace")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}
