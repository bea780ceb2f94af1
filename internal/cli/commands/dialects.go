package commands

import (
	"strconv"

	"github.com/leapstack-labs/reserved/internal/cli/config"
	"github.com/leapstack-labs/reserved/internal/cli/output"
	"github.com/leapstack-labs/reserved/pkg/dialect"
	"github.com/spf13/cobra"
)

// DialectInfo summarizes a registered dialect.
type DialectInfo struct {
	Name                string `json:"name" yaml:"name"`
	Normalization       string `json:"normalization" yaml:"normalization"`
	ReservedWords       int    `json:"reserved_words" yaml:"reserved_words"`
	ReservedColumnNames int    `json:"reserved_column_names" yaml:"reserved_column_names"`
	Reference           string `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Long:  `List every registered dialect with its identifier normalization and table sizes.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig(cmd.Context())
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

			infos := make([]DialectInfo, 0)
			for _, name := range dialect.List() {
				d, ok := dialect.Get(name)
				if !ok {
					continue
				}
				infos = append(infos, DialectInfo{
					Name:                d.Name,
					Normalization:       d.Identifiers.Normalization.String(),
					ReservedWords:       len(d.ReservedWords()),
					ReservedColumnNames: len(d.ReservedColumnNames()),
					Reference:           d.Reference,
				})
			}

			if ok, err := r.Structured(infos); ok {
				return err
			}

			r.Header(1, "Dialects")
			rows := make([][]string, len(infos))
			for i, info := range infos {
				rows[i] = []string{
					r.Ok(info.Name),
					info.Normalization,
					strconv.Itoa(info.ReservedWords),
					strconv.Itoa(info.ReservedColumnNames),
					info.Reference,
				}
			}
			r.Table([]string{"Name", "Normalization", "Keywords", "Column Names", "Reference"}, rows)
			return nil
		},
	}
}
