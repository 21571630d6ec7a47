package config

import (
	"os"
	"strings"
	"testing"

	"github.com/marzipan-term/marzipan/palette"
)

func validConfig() Config {
	return Config{
		Workers:    0,
		Palette:    2,
		Colors:     1,
		Mode:       "mod",
		Color:      true,
		Iterations: 30,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Defaults pass", func(c *Config) {}, ""},
		{"Workers too high", func(c *Config) { c.Workers = 257 }, "workers"},
		{"Workers negative", func(c *Config) { c.Workers = -1 }, "workers"},
		{"Palette zero", func(c *Config) { c.Palette = 0 }, "palette"},
		{"Palette past end", func(c *Config) { c.Palette = palette.BuiltinCount() + 1 }, "palette"},
		{"Colors zero", func(c *Config) { c.Colors = 0 }, "colors"},
		{"Iterations zero", func(c *Config) { c.Iterations = 0 }, "iterations"},
		{"Iterations too high", func(c *Config) { c.Iterations = 10001 }, "iterations"},
		{"Bad mode", func(c *Config) { c.Mode = "log" }, "mode"},
		{"Long mode spellings", func(c *Config) { c.Mode = "linear" }, ""},
		{"Symbols too short", func(c *Config) { c.Symbols = "#" }, "symbols"},
		{"Symbols valid", func(c *Config) { c.Symbols = " .:#" }, ""},
		{"Symbols empty is unset", func(c *Config) { c.Symbols = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestModulo(t *testing.T) {
	tests := []struct {
		mode string
		want bool
	}{
		{"mod", true},
		{"modulo", true},
		{"lin", false},
		{"linear", false},
	}

	for _, tt := range tests {
		c := Config{Mode: tt.mode}
		if got := c.Modulo(); got != tt.want {
			t.Errorf("Modulo(%q): expected %v, got %v", tt.mode, tt.want, got)
		}
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if cfg.Palette != palette.DefaultIndex+1 {
		t.Errorf("Expected default palette %d, got %d", palette.DefaultIndex+1, cfg.Palette)
	}
	if cfg.Iterations != 30 || !cfg.Color || !cfg.Modulo() {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadReadsWorkingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	toml := "iterations = 120\nhalf_block = true\nmode = \"lin\"\npalette = 16\n"
	if err := os.WriteFile("marzipan.toml", []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Iterations != 120 || !cfg.HalfBlock || cfg.Modulo() {
		t.Errorf("File settings not applied: %+v", cfg)
	}
	if cfg.Palette != 16 {
		t.Errorf("Expected palette 16, got %d", cfg.Palette)
	}
	if !cfg.Color {
		t.Error("Unset fields must keep their defaults")
	}
}

func TestLoadWorkingDirectoryWins(t *testing.T) {
	userDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", userDir)

	if err := os.MkdirAll(userDir+"/marzipan", 0o755); err != nil {
		t.Fatal(err)
	}
	userToml := "iterations = 77\n"
	if err := os.WriteFile(userDir+"/marzipan/marzipan.toml", []byte(userToml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(t.TempDir())
	if err := os.WriteFile("marzipan.toml", []byte("iterations = 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Iterations != 120 {
		t.Errorf("Expected the working directory file to win, got iterations %d", cfg.Iterations)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile("marzipan.toml", []byte("iterations = 99999\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected validation error for out-of-range iterations")
	}
}
