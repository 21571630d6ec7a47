// Package config loads optional startup defaults from a TOML file. Settings
// here sit below command-line flags: flag > file > built-in default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/marzipan-term/marzipan/palette"
	"github.com/marzipan-term/marzipan/viewport"
)

// Config mirrors the marzipan.toml schema
type Config struct {
	// Workers is the compute fan-out; 0 auto-detects logical CPUs
	Workers int `mapstructure:"workers"`

	// Palette and Colors are 1-based selections matching the CLI flags
	Palette int `mapstructure:"palette"`
	Colors  int `mapstructure:"colors"`

	// Mode is the iteration mapping: "mod"/"modulo" or "lin"/"linear"
	Mode string `mapstructure:"mode"`

	Color     bool `mapstructure:"color"`
	HalfBlock bool `mapstructure:"half_block"`

	// Iterations is the startup iteration cap
	Iterations int `mapstructure:"iterations"`

	// Symbols is an optional custom glyph palette (2-256 runes)
	Symbols string `mapstructure:"symbols"`
}

// Load reads marzipan.toml from the user config directory (and the working
// directory, which wins for per-project setups). A missing file is not an
// error; a malformed one is.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("marzipan")
	v.SetConfigType("toml")

	// Search order is first-hit-wins, so the working directory goes first
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "marzipan"))
	}

	v.SetDefault("workers", 0)
	v.SetDefault("palette", palette.DefaultIndex+1)
	v.SetDefault("colors", 1)
	v.SetDefault("mode", "mod")
	v.SetDefault("color", true)
	v.SetDefault("half_block", false)
	v.SetDefault("iterations", viewport.DefaultIter)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects out-of-range settings before they reach the core
func (c Config) Validate() error {
	if c.Workers < 0 || c.Workers > 256 {
		return fmt.Errorf("workers must be 0-256, got %d", c.Workers)
	}
	if c.Palette < 1 || c.Palette > palette.BuiltinCount() {
		return fmt.Errorf("palette must be 1-%d, got %d", palette.BuiltinCount(), c.Palette)
	}
	if c.Colors < 1 || c.Colors > palette.SchemeCount() {
		return fmt.Errorf("colors must be 1-%d, got %d", palette.SchemeCount(), c.Colors)
	}
	if c.Iterations < viewport.MinIterations || c.Iterations > viewport.MaxIterations {
		return fmt.Errorf("iterations must be %d-%d, got %d",
			viewport.MinIterations, viewport.MaxIterations, c.Iterations)
	}
	if !validMode(c.Mode) {
		return fmt.Errorf("mode must be 'mod' or 'lin', got %q", c.Mode)
	}
	if c.Symbols != "" {
		n := len([]rune(c.Symbols))
		if n < palette.MinGlyphs || n > palette.MaxGlyphs {
			return fmt.Errorf("symbols must be %d-%d characters, got %d",
				palette.MinGlyphs, palette.MaxGlyphs, n)
		}
	}
	return nil
}

// Modulo resolves the mapping mode string
func (c Config) Modulo() bool {
	return c.Mode == "mod" || c.Mode == "modulo"
}

func validMode(mode string) bool {
	switch mode {
	case "mod", "modulo", "lin", "linear":
		return true
	}
	return false
}
