package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-etch/internal/config"
	"github.com/vovakirdan/tui-etch/internal/core"
	"github.com/vovakirdan/tui-etch/internal/paint"
	"github.com/vovakirdan/tui-etch/internal/platform/tui"
	"github.com/vovakirdan/tui-etch/internal/storage"
)

var (
	flagSize  int
	flagMode  string
	flagColor string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Open the sketch pad",
	Long: `Open the sketch pad in the current terminal.

Controls:
  Left mouse  - Hold and drag to paint
  N / R / D   - Normal, rainbow or darken mode
  C           - Clear the grid
  G           - Change the grid size
  P           - Pick the current color
  Y           - Copy the color under the pointer
  T           - Switch theme
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Settings are taken from the config file, then from preferences saved by
earlier sessions, then from flags.

Examples:
  etch draw
  etch draw --size 48
  etch draw --mode darken
  etch draw --color "hsl(200,80%,50%)"`,
	Args: cobra.NoArgs,
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size (cells per side)")
	drawCmd.Flags().StringVar(&flagMode, "mode", "", "Paint mode: normal, rainbow, darken")
	drawCmd.Flags().StringVar(&flagColor, "color", "", "Current color (#rrggbb, #rgb or hsl(h,s%,l%))")
}

// runDraw returns errors instead of exiting so the log file and database
// are closed on every path.
func runDraw(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := newLogger("etch", true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open preference storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - drawing still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg = tui.ApplyPreferences(cfg, store)
	if err := applyDrawFlags(cmd, &cfg); err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	rt.User = localUser()

	if err := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
	}); err != nil {
		logger.Error("sketch pad stopped", "error", err)
		return err
	}
	return nil
}

// applyDrawFlags overrides cfg with the flags the user actually set.
func applyDrawFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("size") {
		if !cfg.ValidSize(flagSize) {
			return fmt.Errorf("--size must be between %d and %d", cfg.Grid.MinSize, cfg.Grid.MaxSize)
		}
		cfg.Grid.Size = flagSize
	}
	if cmd.Flags().Changed("mode") {
		mode, err := paint.ParseMode(flagMode)
		if err != nil {
			return fmt.Errorf("--mode: %w", err)
		}
		cfg.Paint.Mode = mode.String()
	}
	if cmd.Flags().Changed("color") {
		c, err := paint.ParseColor(flagColor)
		if err != nil {
			return fmt.Errorf("--color: %w", err)
		}
		cfg.Paint.Color = string(c)
	}
	return nil
}

// localUser names the person drawing for session statistics.
func localUser() string {
	for _, env := range []string{"USER", "USERNAME", "LOGNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "local"
}
