// Package config loads default printer options and backend selection from
// a TOML file, so the CLI and HTTP server don't need their defaults
// hardcoded or repeated as a wall of flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/asciidag/asciidag/pkg/printer"
)

// Config is the top-level shape of ~/.config/asciidag/config.toml.
type Config struct {
	Printer PrinterConfig `toml:"printer"`
	Cache   CacheConfig   `toml:"cache"`
	Store   StoreConfig   `toml:"store"`
}

// PrinterConfig mirrors [printer.Options] field-for-field so it can be
// loaded directly from TOML.
type PrinterConfig struct {
	Spacing             string `toml:"spacing"` // "fixed", "justified", or "auto" (default)
	Spaces              int    `toml:"spaces"`
	GroupLabelsByPrefix bool   `toml:"group_by_prefix"`
	GroupLabelsBySuffix bool   `toml:"group_by_suffix"`
	MinGroupSize        int    `toml:"min_group_size"`
	PrefixMinLength     int    `toml:"prefix_min_length"`
	SuffixMinLength     int    `toml:"suffix_min_length"`
}

// CacheConfig selects and configures the render cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"` // "file" (default), "redis", or "none"
	Dir     string `toml:"dir"`     // for "file"
	Addr    string `toml:"addr"`    // for "redis"
}

// StoreConfig selects and configures the render store backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // "file" (default) or "mongo"
	Dir     string `toml:"dir"`     // for "file"
	URI     string `toml:"uri"`     // for "mongo"
	DBName  string `toml:"db_name"` // for "mongo"
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Printer: PrinterConfig{
			Spacing:             "auto",
			Spaces:              4,
			GroupLabelsByPrefix: true,
			GroupLabelsBySuffix: true,
			MinGroupSize:        2,
			PrefixMinLength:     4,
			SuffixMinLength:     4,
		},
		Cache: CacheConfig{Backend: "file"},
		Store: StoreConfig{Backend: "file"},
	}
}

// Path returns the default config file path, ~/.config/asciidag/config.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "asciidag", "config.toml"), nil
}

// Load reads and parses the config file at path. A missing file is not an
// error: [Default] is returned instead, since the CLI and server must work
// with no config file present at all.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// PrinterOptions converts the loaded printer configuration into
// [printer.Options].
func (c Config) PrinterOptions() printer.Options {
	opts := printer.Options{
		Spaces:              c.Printer.Spaces,
		GroupLabelsByPrefix: c.Printer.GroupLabelsByPrefix,
		GroupLabelsBySuffix: c.Printer.GroupLabelsBySuffix,
		MinGroupSize:        c.Printer.MinGroupSize,
		PrefixMinLength:     c.Printer.PrefixMinLength,
		SuffixMinLength:     c.Printer.SuffixMinLength,
	}
	switch c.Printer.Spacing {
	case "fixed":
		opts.Spacing = printer.Fixed
	case "justified":
		opts.Spacing = printer.Justified
	default:
		opts.Spacing = printer.AutoJustified
	}
	return opts
}
