// Package commands holds the almanac subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ib-77/almanac/internal/cli/config"
	"github.com/ib-77/almanac/internal/cli/output"
	"github.com/ib-77/almanac/internal/solve"
	"github.com/ib-77/almanac/pkg/almanac"
	"github.com/ib-77/almanac/pkg/almanac/text"
)

// openInput opens the document named by the first argument, falling back to
// the configured input. "-" reads stdin.
func openInput(cmd *cobra.Command, args []string, cfg *config.Config) (io.ReadCloser, error) {
	path := cfg.Input
	if len(args) > 0 {
		path = args[0]
	}
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// load reads and builds the document for commands that do not solve.
func load(ctx context.Context, cmd *cobra.Command, args []string, cfg *config.Config) (*text.Document, *almanac.Pipeline, error) {
	in, err := openInput(cmd, args, cfg)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = in.Close() }()
	return solve.Load(ctx, in)
}

func renderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	return output.NewRenderer(cmd.OutOrStdout(), output.Mode(cfg.Output))
}
