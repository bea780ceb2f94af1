// Package core defines the shared data types of the reserved-word system.
//
// This package contains:
//   - Dialect configuration (DialectConfig, IdentifierConfig)
//   - Identifier normalization strategies
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
