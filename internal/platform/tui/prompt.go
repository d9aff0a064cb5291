package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-etch/internal/paint"
)

// PromptKind identifies what a prompt asks for.
type PromptKind int

const (
	PromptGridSize PromptKind = iota
	PromptColor
)

// Prompt is a one-line text question shown above the help bar.
type Prompt struct {
	Kind  PromptKind
	Label string
	input textinput.Model
}

// NewGridSizePrompt asks for a grid size in [minSize, maxSize].
func NewGridSizePrompt(current, minSize, maxSize int) Prompt {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(current)
	ti.SetValue(strconv.Itoa(current))
	ti.CharLimit = 3
	ti.Width = 5
	ti.Focus()

	return Prompt{
		Kind:  PromptGridSize,
		Label: fmt.Sprintf("Enter new grid size (%d-%d):", minSize, maxSize),
		input: ti,
	}
}

// NewColorPrompt asks for a new current color.
func NewColorPrompt(current paint.Color) Prompt {
	ti := textinput.New()
	ti.Placeholder = "#rrggbb or hsl(h,s%,l%)"
	ti.SetValue(string(current))
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()

	return Prompt{
		Kind:  PromptColor,
		Label: "Enter color:",
		input: ti,
	}
}

// Value returns the trimmed input text.
func (p Prompt) Value() string {
	return strings.TrimSpace(p.input.Value())
}

// Update forwards a message to the text input.
func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the prompt line.
func (p Prompt) View(theme Theme) string {
	return theme.PromptLabel.Render(p.Label) + " " + p.input.View() +
		"  " + theme.PromptHint.Render("enter: ok  esc: cancel")
}

// ParseGridSize validates grid size input against the given bounds.
func ParseGridSize(s string, minSize, maxSize int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < minSize || n > maxSize {
		return 0, fmt.Errorf("grid size must be a number between %d and %d", minSize, maxSize)
	}
	return n, nil
}
