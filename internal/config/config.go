// Package config loads projtimer settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName        = "projtimer"
	configFileName = "config.yaml"
)

// Theme selects the colour palette.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config holds the user-tunable settings.
type Config struct {
	Theme        Theme  `yaml:"theme"`
	ExportDir    string `yaml:"export_dir"`
	ExportFormat string `yaml:"export_format"`
	LogFile      string `yaml:"log_file"`
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Default returns the built-in settings. ExportDir falls back to the
// current directory when the home directory cannot be resolved.
func Default() Config {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	return Config{
		Theme:        ThemeAuto,
		ExportDir:    dir,
		ExportFormat: FormatCSV,
	}
}

// DefaultPath returns <user config dir>/projtimer/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// Load reads path (missing file means defaults), then applies
// PROJTIMER_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment lookup.
func LoadWithEnv(path string, lookup LookupFunc) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config file: %w", err)
		default:
			var file Config
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return cfg, fmt.Errorf("parse config yaml: %w", err)
			}
			cfg.merge(file)
		}
	}

	if lookup != nil {
		cfg.applyEnv(lookup)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.ExportDir != "" {
		c.ExportDir = o.ExportDir
	}
	if o.ExportFormat != "" {
		c.ExportFormat = o.ExportFormat
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
}

func (c *Config) applyEnv(lookup LookupFunc) {
	var o Config
	if v, ok := lookup("PROJTIMER_THEME"); ok {
		o.Theme = Theme(v)
	}
	if v, ok := lookup("PROJTIMER_EXPORT_DIR"); ok {
		o.ExportDir = v
	}
	if v, ok := lookup("PROJTIMER_EXPORT_FORMAT"); ok {
		o.ExportFormat = v
	}
	if v, ok := lookup("PROJTIMER_LOG_FILE"); ok {
		o.LogFile = v
	}
	c.merge(o)
}

// Validate rejects unknown theme or export format values.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q (want auto, light or dark)", c.Theme)
	}
	switch c.ExportFormat {
	case FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("invalid export format %q (want csv or json)", c.ExportFormat)
	}
	return nil
}
