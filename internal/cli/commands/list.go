package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ListResult is the structured form of the list command output.
type ListResult struct {
	Dialect string   `json:"dialect" yaml:"dialect"`
	Kind    string   `json:"kind" yaml:"kind"`
	Count   int      `json:"count" yaml:"count"`
	Words   []string `json:"words" yaml:"words"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var columns bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the dialect's reserved keywords or reserved column names",
		Long: `List every reserved keyword of the configured dialect, in the order the
table declares them. With --columns, list the reserved column names instead:
pseudo-columns such as CURRENT_TIMESTAMP that generated columns must avoid.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # List Snowflake reserved keywords
  reserved list

  # List reserved column names as JSON
  reserved list --columns --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, columns)
		},
	}

	cmd.Flags().BoolVarP(&columns, "columns", "c", false, "List reserved column names instead of keywords")

	return cmd
}

func runList(cmd *cobra.Command, columns bool) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	d := cmdCtx.Dialect
	r := cmdCtx.Renderer

	res := ListResult{Dialect: d.Name, Kind: "keywords", Words: d.ReservedWords()}
	if columns {
		res.Kind = "column_names"
		res.Words = d.ReservedColumnNames()
	}
	res.Count = len(res.Words)

	cmdCtx.Logger.Debug("listing reserved words", "kind", res.Kind, "count", res.Count)

	if ok, err := r.Structured(res); ok {
		return err
	}

	title := "Reserved keywords"
	if columns {
		title = "Reserved column names"
	}
	r.Header(1, fmt.Sprintf("%s: %s (%d)", title, d.Name, res.Count))

	rows := make([][]string, len(res.Words))
	for i, w := range res.Words {
		rows[i] = []string{strconv.Itoa(i + 1), w}
	}
	r.Table([]string{"#", "Word"}, rows)
	return nil
}
