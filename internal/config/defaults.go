package config

import (
	_ "embed"
)

//go:embed defaults/etch.yaml
var defaultEtchYAML []byte

// DefaultConfig returns the default sketch pad configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Size:    16,
			MinSize: 1,
			MaxSize: 100,
		},
		Paint: PaintConfig{
			Mode:          "normal",
			Color:         "#000000",
			Baseline:      "rendered",
			LenientColors: false,
		},
		UI: UIConfig{
			Theme:     "default",
			CellWidth: 2,
		},
	}
}
