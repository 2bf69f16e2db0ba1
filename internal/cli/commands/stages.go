package commands

import (
	"github.com/spf13/cobra"

	"github.com/ib-77/almanac/internal/cli/config"
)

// NewStagesCommand creates the stages command.
func NewStagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stages [file]",
		Short: "List the stages and their rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			_, p, err := load(cmd.Context(), cmd, args, cfg)
			if err != nil {
				return err
			}
			return renderer(cmd, cfg).Stages(p)
		},
	}
}
