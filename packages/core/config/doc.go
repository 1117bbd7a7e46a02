// Package config handles configuration loading for the attest CLI.
//
// It provides functionality for:
//   - Loading rendering defaults from .attest.yml files
//   - Default configuration values
//   - Merging file configuration with command-line overrides
package config
