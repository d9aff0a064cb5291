package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-etch/internal/paint"
)

// fallbackHex is shown for a color the projection cannot parse.
const fallbackHex = "#000000"

// HexOf projects a cell color onto the #rrggbb form terminals understand.
func HexOf(c paint.Color) string {
	if c.IsHSL() {
		hsl, err := paint.HexToHSL(c)
		if err != nil {
			return fallbackHex
		}
		return colorful.Hsl(float64(hsl.H), float64(hsl.S)/100, float64(hsl.L)/100).Clamped().Hex()
	}

	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackHex
	}
	return col.Hex()
}

// RenderGrid converts the grid to a string of background-colored blocks,
// cellW columns per cell.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderGrid(g *paint.Grid, cellW int) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Size*g.Size*cellW*4 + g.Size)

	styles := make(map[paint.Color]lipgloss.Style)
	styleFor := func(c paint.Color) lipgloss.Style {
		if s, ok := styles[c]; ok {
			return s
		}
		s := lipgloss.NewStyle().Background(lipgloss.Color(HexOf(c)))
		styles[c] = s
		return s
	}

	for y := range g.Size {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < g.Size {
			cell, _ := g.At(paint.C(x, y))
			startColor := cell.Rendered

			run := 0
			for x < g.Size {
				cell, _ = g.At(paint.C(x, y))
				if cell.Rendered != startColor {
					break
				}
				run++
				x++
			}

			sb.WriteString(styleFor(startColor).Render(strings.Repeat(" ", run*cellW)))
		}
	}
	return sb.String()
}

// Swatch renders a small sample of a color.
func Swatch(c paint.Color, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(HexOf(c))).
		Render(strings.Repeat(" ", width))
}
