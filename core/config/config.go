// File: config.go
// Title: Configuration Loading Implementation
// Description: Implements the File type and loading logic for crochet CLI
//              configuration from TOML and YAML files, with format
//              auto-detection by file extension and default values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// File represents the crochet tool configuration
type File struct {
	// Color controls terminal styling of diagnostics and reports:
	// "auto", "always", or "never"
	Color string `toml:"color" yaml:"color"`

	// Strict makes lint findings fail the check command
	Strict bool `toml:"strict" yaml:"strict"`

	// Log holds logging configuration
	Log LogConfig `toml:"log" yaml:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level ("trace" through "fatal")
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is present
func Default() *File {
	return &File{
		Color: "auto",
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads a configuration file, auto-detecting its format
func Load(path string) (*File, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat reads a configuration file in the given format
func LoadWithFormat(path string, format Format) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML config %s: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values
func (f *File) Validate() error {
	switch f.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", f.Color)
	}

	switch strings.ToLower(f.Log.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("unknown log level: %q", f.Log.Level)
	}

	return nil
}

// detectFormat determines the format from the file extension,
// defaulting to TOML
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
