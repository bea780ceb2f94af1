// Package commands implements the reserved CLI subcommands.
package commands

import (
	"log/slog"

	"github.com/leapstack-labs/reserved/internal/cli/config"
	"github.com/leapstack-labs/reserved/internal/cli/output"
	"github.com/leapstack-labs/reserved/pkg/dialect"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dialect  *dialect.Dialect
	Renderer *output.Renderer
}

// NewCommandContext resolves the configured dialect and builds a renderer
// for the configured output mode.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	d, err := dialect.Lookup(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger.With("dialect", d.Name),
		Dialect:  d,
		Renderer: r,
	}, nil
}
