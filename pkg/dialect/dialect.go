// Package dialect provides SQL dialect reserved-word lookups and identifier quoting.
//
// This package contains the public contract for dialect definitions used by
// identifier-quoting and column-naming code. Concrete dialects are registered
// from pkg/dialects/*/ packages.
package dialect

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/reserved/pkg/core"
)

// DefaultColumnPrefix is prepended to generated column names that collide
// with a reserved column name.
const DefaultColumnPrefix = "_"

// plainIdentifier matches identifiers that are legal unquoted in every
// supported dialect.
var plainIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// Dialect represents a SQL dialect's reserved-word tables.
//
// A Dialect is immutable once Build returns and safe for concurrent use.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig

	// DefaultSchema is the default schema name ("PUBLIC" for Snowflake)
	DefaultSchema string

	// Reference is the documentation URL the word lists were taken from.
	Reference string

	// Declaration order, normalized.
	reservedWordList   []string
	reservedColumnList []string

	reservedWords       map[string]struct{} // Keywords that need quoting as identifiers
	reservedColumnNames map[string]struct{} // Pseudo-columns generated names must avoid
}

// Config returns the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	return &core.DialectConfig{
		Name:                d.Name,
		Identifiers:         d.Identifiers,
		DefaultSchema:       d.DefaultSchema,
		Reference:           d.Reference,
		ReservedWords:       d.ReservedWords(),
		ReservedColumnNames: d.ReservedColumnNames(),
	}
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase, core.NormCaseInsensitive:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// IsReservedWord returns true if the word needs quoting when used as an identifier.
// The word is normalized first, so callers need not change its case.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[d.NormalizeName(word)]
	return ok
}

// IsReservedColumnName returns true if the name collides with a reserved pseudo-column.
func (d *Dialect) IsReservedColumnName(name string) bool {
	_, ok := d.reservedColumnNames[d.NormalizeName(name)]
	return ok
}

// ReservedWords returns all reserved words in declaration order.
// The returned slice is a copy.
func (d *Dialect) ReservedWords() []string {
	return append([]string(nil), d.reservedWordList...)
}

// ReservedColumnNames returns all reserved column names in declaration order.
// The returned slice is a copy.
func (d *Dialect) ReservedColumnNames() []string {
	return append([]string(nil), d.reservedColumnList...)
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// NeedsQuoting reports whether name must be quoted to be used as an identifier:
// it is a reserved word, empty, or contains characters outside [A-Za-z0-9_$].
func (d *Dialect) NeedsQuoting(name string) bool {
	return d.IsReservedWord(name) || !plainIdentifier.MatchString(name)
}

// QuoteIdentifierIfNeeded quotes an identifier only if NeedsQuoting reports true.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if d.NeedsQuoting(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

// SafeColumnName normalizes a generated column name and prefixes it when it
// collides with a reserved column name (CURRENT_DATE -> _CURRENT_DATE).
// An empty prefix means DefaultColumnPrefix.
func (d *Dialect) SafeColumnName(name, prefix string) string {
	if prefix == "" {
		prefix = DefaultColumnPrefix
	}
	normalized := d.NormalizeName(name)
	if d.IsReservedColumnName(normalized) {
		return d.NormalizeName(prefix + normalized)
	}
	return normalized
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
// Identifiers default to double quotes and lowercase normalization.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name: name,
			Identifiers: core.IdentifierConfig{
				Quote:         `"`,
				QuoteEnd:      `"`,
				Escape:        `""`,
				Normalization: core.NormLowercase,
			},
			reservedWords:       make(map[string]struct{}),
			reservedColumnNames: make(map[string]struct{}),
		},
	}
}

// New creates a dialect builder from a DialectConfig.
// This is the preferred constructor for dialects that ship their tables as config data.
func New(cfg *core.DialectConfig) *Builder {
	b := &Builder{
		dialect: &Dialect{
			Name:                cfg.Name,
			Identifiers:         cfg.Identifiers,
			DefaultSchema:       cfg.DefaultSchema,
			Reference:           cfg.Reference,
			reservedWords:       make(map[string]struct{}),
			reservedColumnNames: make(map[string]struct{}),
		},
	}
	return b.WithReservedWords(cfg.ReservedWords...).
		WithReservedColumnNames(cfg.ReservedColumnNames...)
}

// Identifiers configures identifier quoting and normalization.
// Call it before adding words; words are normalized as they are added.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// DefaultSchema sets the default schema name.
func (b *Builder) DefaultSchema(schema string) *Builder {
	b.dialect.DefaultSchema = schema
	return b
}

// WithReservedWords registers words that need quoting when used as identifiers.
// Duplicates are dropped; the first occurrence keeps its position.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	b.dialect.reservedWordList = b.addWords(b.dialect.reservedWords, b.dialect.reservedWordList, words)
	return b
}

// WithReservedColumnNames registers pseudo-column names that generated columns must avoid.
func (b *Builder) WithReservedColumnNames(names ...string) *Builder {
	b.dialect.reservedColumnList = b.addWords(b.dialect.reservedColumnNames, b.dialect.reservedColumnList, names)
	return b
}

func (b *Builder) addWords(set map[string]struct{}, list, words []string) []string {
	for _, w := range words {
		normalized := b.dialect.NormalizeName(w)
		if _, dup := set[normalized]; dup {
			continue
		}
		set[normalized] = struct{}{}
		list = append(list, normalized)
	}
	return list
}

// Build returns the constructed dialect.
// The builder must not be used after Build.
func (b *Builder) Build() *Dialect {
	d := b.dialect
	b.dialect = nil
	return d
}
