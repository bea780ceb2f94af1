// Package main provides the CLI for the reserved keyword tables.
package main

import (
	"os"

	"github.com/leapstack-labs/reserved/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
