package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/reserved/pkg/dialect"
	// Register dialects via init()
	_ "github.com/leapstack-labs/reserved/pkg/dialects/snowflake"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("dialect", "d", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.String("column-prefix", "", "")
	return fs
}

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, used, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "reserved.yaml"), []byte(`
output: json
column_prefix: file_
verbose: true
`), 0o600))

	t.Run("file over defaults", func(t *testing.T) {
		cfg, used, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, "reserved.yaml", used)
		assert.Equal(t, "json", cfg.OutputFormat)
		assert.Equal(t, "file_", cfg.ColumnPrefix)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, DefaultDialect, cfg.Dialect)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("RESERVED_COLUMN_PREFIX", "env_")
		cfg, _, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, "env_", cfg.ColumnPrefix)
		assert.Equal(t, "json", cfg.OutputFormat)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("RESERVED_COLUMN_PREFIX", "env_")
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--column-prefix", "flag_", "-o", "yaml"}))

		cfg, _, err := LoadConfig("", fs)
		require.NoError(t, err)
		assert.Equal(t, "flag_", cfg.ColumnPrefix)
		assert.Equal(t, "yaml", cfg.OutputFormat)
	})

	t.Run("unset flags do not override", func(t *testing.T) {
		cfg, _, err := LoadConfig("", newFlags())
		require.NoError(t, err)
		assert.Equal(t, "file_", cfg.ColumnPrefix)
	})
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: markdown\n"), 0o600))

	cfg, used, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, _, err := LoadConfig("does-not-exist.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("unknown dialect", func(t *testing.T) {
		t.Setenv("RESERVED_DIALECT", "oracle")
		_, _, err := LoadConfig("", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, dialect.ErrUnknownDialect))
	})

	t.Run("unknown output", func(t *testing.T) {
		t.Setenv("RESERVED_OUTPUT", "xml")
		_, _, err := LoadConfig("", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"dialect is case insensitive", func(c *Config) { c.Dialect = "Snowflake" }, ""},
		{"empty output means auto", func(c *Config) { c.OutputFormat = "" }, ""},
		{"empty prefix", func(c *Config) { c.ColumnPrefix = "" }, "column_prefix"},
		{"bad dialect", func(c *Config) { c.Dialect = "mysql" }, "unknown dialect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestContextAccessors(t *testing.T) {
	assert.Equal(t, Default(), GetConfig(context.Background()))
	assert.NotNil(t, GetLogger(context.Background()))

	cfg := Default()
	cfg.Verbose = true
	logger := NewLogger(cfg)
	ctx := WithConfig(context.Background(), cfg, logger)

	assert.Same(t, cfg, GetConfig(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}
