package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the sketch pad chrome.
// Cell colors are never themed; they are projected from cell state as-is.
type Theme struct {
	// Toolbar styles
	Title        lipgloss.Style
	ModeActive   lipgloss.Style // Pressed-in look of the selected mode
	ModeInactive lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Separator    lipgloss.Style

	// Grid frame
	Frame lipgloss.Style

	// Status line styles
	Status lipgloss.Style
	Alert  lipgloss.Style
	Error  lipgloss.Style

	// Prompt styles
	PromptLabel lipgloss.Style
	PromptHint  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		ModeActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("226")).
			Bold(true).
			Padding(0, 1),
		ModeInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Alert:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		PromptLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		PromptHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.ModeActive = theme.ModeActive.Background(lipgloss.Color("87"))
	theme.Frame = theme.Frame.BorderForeground(lipgloss.Color("171"))
	theme.Alert = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true)
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true)
	theme.ModeActive = theme.ModeActive.Background(lipgloss.Color("157"))
	theme.ModeInactive = theme.ModeInactive.Background(lipgloss.Color("60"))
	theme.Frame = theme.Frame.BorderForeground(lipgloss.Color("183"))
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.ModeActive = theme.ModeActive.Background(lipgloss.Color("250"))
	theme.Alert = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.PromptLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

// ThemeByName returns the theme for a config name, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "neon":
		return NeonTheme()
	case "pastel":
		return PastelTheme()
	case "mono":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}
