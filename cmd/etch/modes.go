package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etch/internal/paint"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all paint modes",
	Long:  `Shows the paint modes the sketch pad supports.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := paint.AllModes()

	fmt.Println("Paint modes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Mode" header
	for _, m := range modes {
		if len(m.String()) > maxNameLen {
			maxNameLen = len(m.String())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Mode", "Effect")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "------")

	// Print modes
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxNameLen, m, m.Description())
	}

	fmt.Println()
	fmt.Println("Run 'etch draw --mode <mode>' to start in a mode.")
}
