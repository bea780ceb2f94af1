package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data with no behavior.
//
// The runtime lookups (membership sets, quoting) live in
// pkg/dialect.Dialect, which is built from this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "snowflake")
	Name string

	// Identifiers defines quoting and normalization rules
	Identifiers IdentifierConfig

	// DefaultSchema is the default schema name ("PUBLIC" for Snowflake)
	DefaultSchema string

	// Reference points at the vendor documentation the word lists were taken from.
	Reference string

	// ReservedWords are keywords that cannot be used unquoted as identifiers.
	// Declaration order is preserved by the dialect builder.
	ReservedWords []string

	// ReservedColumnNames collide with dialect pseudo-columns and must not
	// be used as generated column names.
	ReservedColumnNames []string
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Snowflake, Oracle).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL, ClickHouse).
	NormCaseSensitive
	// NormCaseInsensitive normalizes to lowercase for comparison (BigQuery, Hive, DuckDB).
	NormCaseInsensitive
)

// String returns the string representation of NormalizationStrategy.
func (s NormalizationStrategy) String() string {
	switch s {
	case NormLowercase:
		return "lowercase"
	case NormUppercase:
		return "uppercase"
	case NormCaseSensitive:
		return "case-sensitive"
	case NormCaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `, [
	QuoteEnd      string                // End quote character (usually same as Quote, ] for [)
	Escape        string                // Escape sequence: "", ``, ]]
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}
