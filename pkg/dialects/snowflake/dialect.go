package snowflake

import (
	"github.com/leapstack-labs/reserved/pkg/dialect"
)

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake SQL dialect.
// Lookups normalize to uppercase, so callers may pass identifiers in any case.
var Snowflake = dialect.New(Config).Build()

// IsReservedKeyword reports whether token, uppercased, is a Snowflake reserved keyword.
func IsReservedKeyword(token string) bool {
	return Snowflake.IsReservedWord(token)
}

// IsReservedColumnName reports whether token, uppercased, is a Snowflake reserved column name.
func IsReservedColumnName(token string) bool {
	return Snowflake.IsReservedColumnName(token)
}

// ReservedKeywords returns the reserved keywords in declaration order.
// The order is stable but not alphabetical.
func ReservedKeywords() []string {
	return Snowflake.ReservedWords()
}

// ReservedColumnNames returns the reserved column names in declaration order.
func ReservedColumnNames() []string {
	return Snowflake.ReservedColumnNames()
}
