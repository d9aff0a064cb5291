// Package config provides YAML-based configuration loading for the sketch pad.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-etch/internal/paint"
)

// Config contains all configuration for the sketch pad.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Paint PaintConfig `yaml:"paint"`
	UI    UIConfig    `yaml:"ui"`
}

// GridConfig defines grid dimensions.
type GridConfig struct {
	Size    int `yaml:"size"`
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// PaintConfig defines the initial paint state and color policies.
type PaintConfig struct {
	Mode          string `yaml:"mode"`
	Color         string `yaml:"color"`
	Baseline      string `yaml:"baseline"`       // "rendered" or "legacy"
	LenientColors bool   `yaml:"lenient_colors"` // Malformed colors become black
}

// UIConfig defines presentation settings.
type UIConfig struct {
	Theme     string `yaml:"theme"`
	CellWidth int    `yaml:"cell_width"` // Terminal columns per cell
}

// Themes lists the accepted theme names.
var Themes = []string{"default", "neon", "pastel", "mono"}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Grid.MinSize < 1 {
		return fmt.Errorf("config: grid.min_size must be at least 1, got %d", c.Grid.MinSize)
	}
	if c.Grid.MaxSize < c.Grid.MinSize {
		return fmt.Errorf("config: grid.max_size %d is below grid.min_size %d", c.Grid.MaxSize, c.Grid.MinSize)
	}
	if !c.ValidSize(c.Grid.Size) {
		return fmt.Errorf("config: grid.size %d outside [%d, %d]", c.Grid.Size, c.Grid.MinSize, c.Grid.MaxSize)
	}
	if _, err := paint.ParseMode(c.Paint.Mode); err != nil {
		return fmt.Errorf("config: paint.mode: %w", err)
	}
	if _, err := paint.ParseColor(c.Paint.Color); err != nil {
		return fmt.Errorf("config: paint.color: %w", err)
	}
	if _, err := paint.ParseBaselinePolicy(c.Paint.Baseline); err != nil {
		return fmt.Errorf("config: paint.baseline: %w", err)
	}
	if !validTheme(c.UI.Theme) {
		return fmt.Errorf("config: unknown ui.theme %q", c.UI.Theme)
	}
	if c.UI.CellWidth < 1 || c.UI.CellWidth > 4 {
		return fmt.Errorf("config: ui.cell_width must be in [1, 4], got %d", c.UI.CellWidth)
	}
	return nil
}

// ValidSize reports whether size is within the configured grid bounds.
func (c Config) ValidSize(size int) bool {
	return size >= c.Grid.MinSize && size <= c.Grid.MaxSize
}

// Mode returns the parsed initial paint mode.
func (c Config) Mode() paint.Mode {
	m, err := paint.ParseMode(c.Paint.Mode)
	if err != nil {
		return paint.ModeNormal
	}
	return m
}

// Color returns the parsed initial current color.
func (c Config) Color() paint.Color {
	col, err := paint.ParseColor(c.Paint.Color)
	if err != nil {
		return "#000000"
	}
	return col
}

// DispatcherOptions builds dispatcher options from the paint settings.
func (c Config) DispatcherOptions(seed int64) paint.DispatcherOptions {
	policy, err := paint.ParseBaselinePolicy(c.Paint.Baseline)
	if err != nil {
		policy = paint.BaselineRendered
	}
	return paint.DispatcherOptions{
		Seed:     seed,
		Baseline: policy,
		Lenient:  c.Paint.LenientColors,
	}
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
