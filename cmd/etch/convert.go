package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etch/internal/paint"
	"github.com/vovakirdan/tui-etch/internal/platform/tui"
)

var flagDarken int

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to HSL",
	Long: `Print the HSL triple of a color given as #rrggbb, #rgb or hsl(h,s%,l%),
together with its hsl() form and the terminal color it is drawn with.

With --darken N the color is shown after N darken passes.

Examples:
  etch convert "#ff8800"
  etch convert "#fff" --darken 3
  etch convert "hsl(120,50%,40%)"`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	convertCmd.Flags().IntVar(&flagDarken, "darken", 0, "Number of darken passes to apply (0-10)")
}

func runConvert(_ *cobra.Command, args []string) {
	if flagDarken < 0 || flagDarken > paint.MaxDarkness {
		fmt.Fprintf(os.Stderr, "Error: --darken must be between 0 and %d\n", paint.MaxDarkness)
		os.Exit(1)
	}

	hsl, err := paint.ConvertColor(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDarken > 0 {
		hsl = hsl.Darken(flagDarken)
	}

	fmt.Printf("h: %d\n", hsl.H)
	fmt.Printf("s: %d\n", hsl.S)
	fmt.Printf("l: %d\n", hsl.L)
	fmt.Printf("css: %s\n", hsl)
	fmt.Printf("hex: %s\n", tui.HexOf(hsl.Color()))
}
