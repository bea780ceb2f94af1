// Package snowflake provides the Snowflake SQL dialect reserved-word tables.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/reserved/pkg/core"

// ReferenceURL is the documentation page the reserved keyword table was copied from.
const ReferenceURL = "https://docs.snowflake.com/en/sql-reference/reserved-keywords"

// Config is the Snowflake SQL dialect configuration.
// This is pure data; the Builder turns it into lookup sets.
var Config = &core.DialectConfig{
	Name:          "snowflake",
	DefaultSchema: "PUBLIC",
	Reference:     ReferenceURL,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase, // Snowflake normalizes to uppercase
	},

	ReservedWords:       snowflakeReservedWords,
	ReservedColumnNames: snowflakeReservedColumnNames,
}
