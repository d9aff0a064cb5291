package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-etch/internal/paint"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultEtchYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default %+v differs from DefaultConfig() %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("grid:\n  size: 32\npaint:\n  mode: darken\n  color: \"#ff0000\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 32 {
		t.Errorf("expected size 32, got %d", cfg.Grid.Size)
	}
	if cfg.Mode() != paint.ModeDarken {
		t.Errorf("expected darken mode, got %v", cfg.Mode())
	}
	if cfg.Color() != "#ff0000" {
		t.Errorf("expected #ff0000, got %s", cfg.Color())
	}
	// Keys absent from the file keep their defaults.
	if cfg.Grid.MaxSize != 100 || cfg.UI.Theme != "default" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "etch.yaml"), []byte("grid:\n  size: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 8 {
		t.Errorf("expected local config size 8, got %d", cfg.Grid.Size)
	}

	// User config wins over local.
	if err := os.MkdirAll(filepath.Join(home, ".etch"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".etch", "config.yaml"), []byte("grid:\n  size: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 24 {
		t.Errorf("expected user config size 24, got %d", cfg.Grid.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"defaults", func(*Config) {}, ""},
		{"size too big", func(c *Config) { c.Grid.Size = 101 }, "grid.size"},
		{"size zero", func(c *Config) { c.Grid.Size = 0 }, "grid.size"},
		{"min below one", func(c *Config) { c.Grid.MinSize = 0 }, "min_size"},
		{"max below min", func(c *Config) { c.Grid.MaxSize = 0 }, "max_size"},
		{"bad mode", func(c *Config) { c.Paint.Mode = "eraser" }, "paint.mode"},
		{"bad color", func(c *Config) { c.Paint.Color = "#12" }, "paint.color"},
		{"bad baseline", func(c *Config) { c.Paint.Baseline = "fresh" }, "paint.baseline"},
		{"bad theme", func(c *Config) { c.UI.Theme = "sepia" }, "ui.theme"},
		{"bad cell width", func(c *Config) { c.UI.CellWidth = 0 }, "cell_width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errSub == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("expected error mentioning %q, got %v", tc.errSub, err)
			}
		})
	}
}

func TestDispatcherOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paint.Baseline = "legacy"
	cfg.Paint.LenientColors = true

	opts := cfg.DispatcherOptions(99)
	if opts.Seed != 99 || opts.Baseline != paint.BaselineLegacy || !opts.Lenient {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
