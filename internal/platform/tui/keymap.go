package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-etch/internal/core"
)

// KeyMap defines the key bindings for the sketch pad.
type KeyMap struct {
	Normal    key.Binding
	Rainbow   key.Binding
	Darken    key.Binding
	Clear     key.Binding
	Resize    key.Binding
	PickColor key.Binding
	Yank      key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Normal, k.Rainbow, k.Darken, k.Clear, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Normal, k.Rainbow, k.Darken},
		{k.Clear, k.Resize, k.PickColor, k.Yank},
		{k.Theme, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Normal: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "normal"),
		),
		Rainbow: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rainbow"),
		),
		Darken: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "darken"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Resize: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid size"),
		),
		PickColor: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pick color"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy color"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to sketch pad actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Normal):
		return core.ActionNormal, false
	case key.Matches(msg, km.keys.Rainbow):
		return core.ActionRainbow, false
	case key.Matches(msg, km.keys.Darken):
		return core.ActionDarken, false
	case key.Matches(msg, km.keys.Clear):
		return core.ActionClear, false
	case key.Matches(msg, km.keys.Resize):
		return core.ActionResize, false
	case key.Matches(msg, km.keys.PickColor):
		return core.ActionPickColor, false
	case key.Matches(msg, km.keys.Yank):
		return core.ActionYank, false
	case key.Matches(msg, km.keys.Theme):
		return core.ActionTheme, false
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp, false
	}
	return core.ActionNone, false
}

// MapPromptKey translates a key pressed while a prompt is open.
// Everything except confirm, back and ctrl+c goes to the text input.
func (km *KeyMapper) MapPromptKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "enter":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "ctrl+c":
		return core.ActionQuit
	}
	return core.ActionNone
}
