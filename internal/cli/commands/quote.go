package commands

import (
	"github.com/spf13/cobra"
)

// QuoteResult pairs an identifier with the form to emit in SQL.
type QuoteResult struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Quoted     string `json:"quoted" yaml:"quoted"`
}

// NewQuoteCommand creates the quote command.
func NewQuoteCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "quote IDENTIFIER...",
		Short: "Print identifiers quoted for the dialect when needed",
		Long: `Print each identifier on its own line, quoted with the dialect's quote
characters if it is a reserved keyword or is not a plain identifier.
Use --all to quote every identifier.`,
		Example: `  reserved quote order customer_id
  # "order"
  # customer_id`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			d := cmdCtx.Dialect

			results := make([]QuoteResult, len(args))
			for i, ident := range args {
				quoted := d.QuoteIdentifierIfNeeded(ident)
				if all {
					quoted = d.QuoteIdentifier(ident)
				}
				results[i] = QuoteResult{Identifier: ident, Quoted: quoted}
			}

			if ok, err := cmdCtx.Renderer.Structured(results); ok {
				return err
			}
			for _, res := range results {
				cmdCtx.Renderer.Println(res.Quoted)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Quote every identifier")

	return cmd
}
