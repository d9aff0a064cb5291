// etch is a terminal sketch pad: drag the mouse over a grid of cells to
// paint, rainbow-paint or progressively darken them.
//
// Usage:
//
//	etch draw              - Open the sketch pad
//	etch serve             - Start SSH server for remote drawing
//	etch stats             - Show recent session statistics
//	etch modes             - List paint modes
//	etch convert <color>   - Print the HSL triple of a color
//	etch config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible rainbow colors
//	--db <path>          - Set database path (default: ~/.etch/etch.db)
//	--config <path>      - Use a specific configuration file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etch/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "etch",
	Short: "etch - Sketch in your terminal",
	Long: `etch is a terminal sketch pad. Hold the left mouse button and drag
across the grid to paint cells.

Paint modes:
  normal   - Paint with the current color
  rainbow  - Paint each cell with a random hue
  darken   - Darken a cell by 10% per pass, up to 10 passes

Available commands:
  draw     - Open the sketch pad
  serve    - Start SSH server for remote drawing
  stats    - View session statistics
  modes    - List paint modes
  convert  - Convert a color to HSL
  config   - Show the effective configuration

Examples:
  etch draw
  etch draw --size 32 --mode rainbow
  etch serve --ssh :2222
  etch convert "#ff8800"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.etch/etch.db", "Path to preferences and statistics database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from the global flags. When
// quietTerminal is set and no log file was given, logs are discarded so
// they cannot tear the full-screen UI.
func newLogger(prefix string, quietTerminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quietTerminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the configuration selected by --config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
