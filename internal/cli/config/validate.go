package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/reserved/internal/cli/output"
	"github.com/leapstack-labs/reserved/pkg/dialect"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := dialect.Lookup(c.Dialect); err != nil {
		return err
	}
	if !output.Mode(c.OutputFormat).Valid() {
		return fmt.Errorf("unknown output format %q (use: %s)", c.OutputFormat, strings.Join(output.ModeNames(), ", "))
	}
	if c.ColumnPrefix == "" {
		return errors.New("column_prefix must not be empty")
	}
	return nil
}
