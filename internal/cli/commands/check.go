package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/reserved/internal/cli/output"
	"github.com/leapstack-labs/reserved/pkg/dialect"
	"github.com/spf13/cobra"
)

// ErrReservedIdentifier is returned by check --strict when any identifier is reserved.
var ErrReservedIdentifier = errors.New("reserved identifier")

// CheckResult describes how the dialect treats one identifier.
type CheckResult struct {
	Identifier         string `json:"identifier" yaml:"identifier"`
	Normalized         string `json:"normalized" yaml:"normalized"`
	ReservedKeyword    bool   `json:"reserved_keyword" yaml:"reserved_keyword"`
	ReservedColumnName bool   `json:"reserved_column_name" yaml:"reserved_column_name"`
	Quoted             string `json:"quoted" yaml:"quoted"`
	SafeColumnName     string `json:"safe_column_name" yaml:"safe_column_name"`
}

// Reserved reports whether the identifier hit either table.
func (c CheckResult) Reserved() bool {
	return c.ReservedKeyword || c.ReservedColumnName
}

// CheckIdentifiers evaluates each identifier against d.
func CheckIdentifiers(d *dialect.Dialect, columnPrefix string, identifiers []string) []CheckResult {
	results := make([]CheckResult, 0, len(identifiers))
	for _, ident := range identifiers {
		results = append(results, CheckResult{
			Identifier:         ident,
			Normalized:         d.NormalizeName(ident),
			ReservedKeyword:    d.IsReservedWord(ident),
			ReservedColumnName: d.IsReservedColumnName(ident),
			Quoted:             d.QuoteIdentifierIfNeeded(ident),
			SafeColumnName:     d.SafeColumnName(ident, columnPrefix),
		})
	}
	return results
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check IDENTIFIER...",
		Short: "Check identifiers against the reserved keyword and column name tables",
		Long: `Check each identifier against the configured dialect. Matching is case
insensitive: identifiers are normalized the way the dialect normalizes
unquoted names before lookup.

For every identifier the report shows whether it is a reserved keyword,
whether it is a reserved column name, the form to emit in generated SQL,
and the name to use for a generated column.`,
		Example: `  # Check a few column names
  reserved check order customer_id current_date

  # Fail (exit 1) if any identifier is reserved
  reserved check --strict "$COLUMN"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Return an error if any identifier is reserved")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, strict bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	results := CheckIdentifiers(cmdCtx.Dialect, cmdCtx.Cfg.ColumnPrefix, args)

	var reserved []string
	for _, res := range results {
		if res.Reserved() {
			reserved = append(reserved, res.Identifier)
		}
	}
	cmdCtx.Logger.Debug("checked identifiers", "count", len(results), "reserved", len(reserved))

	ok, err := r.Structured(results)
	if err != nil {
		return err
	}
	if !ok {
		renderCheckTable(r, results)
		if len(reserved) > 0 && !strict {
			r.Warn(fmt.Sprintf("%d of %d identifiers are reserved", len(reserved), len(results)))
		}
	}

	if strict && len(reserved) > 0 {
		return fmt.Errorf("%w: %s", ErrReservedIdentifier, strings.Join(reserved, ", "))
	}
	return nil
}

func renderCheckTable(r *output.Renderer, results []CheckResult) {
	rows := make([][]string, len(results))
	for i, res := range results {
		rows[i] = []string{
			res.Identifier,
			r.Flag(res.ReservedKeyword),
			r.Flag(res.ReservedColumnName),
			res.Quoted,
			res.SafeColumnName,
		}
	}
	r.Table([]string{"Identifier", "Keyword", "Column Name", "Quoted", "Safe Column"}, rows)
}
