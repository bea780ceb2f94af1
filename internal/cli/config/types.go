// Package config provides configuration management for the reserved CLI.
//
// Configuration is layered with koanf: defaults, then reserved.yaml,
// then RESERVED_* environment variables, then explicitly-set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Dialect      string `koanf:"dialect"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	ColumnPrefix string `koanf:"column_prefix"`
}

// Default configuration values.
const (
	DefaultDialect      = "snowflake"
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultColumnPrefix = "_"
	EnvPrefix           = "RESERVED_"
)

// ConfigFileNames are searched, in order, in the working directory.
var ConfigFileNames = []string{"reserved.yaml", "reserved.yml"}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Dialect:      DefaultDialect,
		OutputFormat: DefaultOutput,
		ColumnPrefix: DefaultColumnPrefix,
	}
}
