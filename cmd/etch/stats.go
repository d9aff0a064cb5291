package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-etch/internal/platform/tui"
	"github.com/vovakirdan/tui-etch/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics",
	Long: `Display the most recent sketch sessions and overall totals.

Only counts are stored; drawings are never saved.

Examples:
  etch stats
  etch stats --limit 25
  etch stats -i`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse sessions in a table")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		theme := tui.ThemeByName(loadConfig().UI.Theme)
		if err := tui.RunHistory(store, flagLimit, theme, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'etch draw' to start one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-5s  %-6s  %-7s  %s\n", "Started", "User", "Where", "Cells", "Grid", "Length")
	fmt.Printf("  %-16s  %-12s  %-5s  %-6s  %-7s  %s\n", "-------", "----", "-----", "-----", "----", "------")

	// Print sessions
	for _, s := range sessions {
		where := "local"
		if s.Remote {
			where = "ssh"
		}
		fmt.Printf("  %-16s  %-12s  %-5s  %-6d  %-7s  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			s.User,
			where,
			s.Interactions(),
			fmt.Sprintf("%dx%d", s.FinalSize, s.FinalSize),
			s.Duration().Round(time.Second),
		)
	}

	// Show totals
	fmt.Println()
	if totals, err := store.SessionTotals(); err == nil {
		fmt.Printf("Total: %d sessions, %d cells (normal %d, rainbow %d, darken %d)\n",
			totals.Sessions, totals.Interactions, totals.Strokes, totals.Rainbow, totals.Darkens)
	}
}
