package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etch/internal/config"
	"github.com/vovakirdan/tui-etch/internal/paint"
)

func newDrawFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().IntVar(&flagSize, "size", 0, "")
	cmd.Flags().StringVar(&flagMode, "mode", "", "")
	cmd.Flags().StringVar(&flagColor, "color", "", "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}
	return cmd
}

func TestApplyDrawFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cmd := newDrawFlags(t, "--size", "32", "--mode", "r", "--color", "HSL(10,20%,30%)")

	if err := applyDrawFlags(cmd, &cfg); err != nil {
		t.Fatalf("applyDrawFlags() failed: %v", err)
	}
	if cfg.Grid.Size != 32 || cfg.Mode() != paint.ModeRainbow || cfg.Color() != "hsl(10,20%,30%)" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestApplyDrawFlagsUnsetKeepsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid.Size = 48
	cmd := newDrawFlags(t)

	if err := applyDrawFlags(cmd, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Size != 48 {
		t.Errorf("unset --size overrode config: %d", cfg.Grid.Size)
	}
}

func TestApplyDrawFlagsRejects(t *testing.T) {
	tests := [][]string{
		{"--size", "0"},
		{"--size", "101"},
		{"--mode", "eraser"},
		{"--color", "#12345"},
	}

	for _, args := range tests {
		t.Run(args[0]+"="+args[1], func(t *testing.T) {
			cfg := config.DefaultConfig()
			if err := applyDrawFlags(newDrawFlags(t, args...), &cfg); err == nil {
				t.Errorf("expected error for %v", args)
			}
		})
	}
}
