package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etch/internal/config"
	"github.com/vovakirdan/tui-etch/internal/platform/tui"
	"github.com/vovakirdan/tui-etch/internal/storage"
)

var flagResetPrefs bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration 'etch draw' starts from as YAML: the config
file merged with the preferences saved by earlier sessions.

The output can be saved as ~/.etch/config.yaml. Use --reset-prefs to
forget saved preferences first.

Examples:
  etch config
  etch config --reset-prefs
  etch config > ~/.etch/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResetPrefs, "reset-prefs", false, "Forget saved preferences before printing")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return writeConfig(os.Stdout, cfg, store, flagResetPrefs)
}

// writeConfig writes cfg with the stored preferences applied. With reset
// set, the preferences are cleared first. store may be nil.
func writeConfig(w io.Writer, cfg config.Config, store *storage.Store, reset bool) error {
	if reset && store != nil {
		if err := store.ClearPreferences(); err != nil {
			return fmt.Errorf("clearing preferences: %w", err)
		}
	}

	data, err := config.Marshal(tui.ApplyPreferences(cfg, store))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
