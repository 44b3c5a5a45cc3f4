// Package config loads crochet tool configuration from TOML or YAML files.
//
// Package: config
// Title: Crochet Tool Configuration
// Description: Implements loading and validation of the crochet CLI
//              configuration from TOML (default) and YAML files with
//              format auto-detection and sensible defaults.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial implementation with TOML/YAML support
package config
