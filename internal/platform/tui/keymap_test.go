package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-etch/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"n", keyRunes("n"), core.ActionNormal, false},
		{"r", keyRunes("r"), core.ActionRainbow, false},
		{"d", keyRunes("d"), core.ActionDarken, false},
		{"c", keyRunes("c"), core.ActionClear, false},
		{"g", keyRunes("g"), core.ActionResize, false},
		{"p", keyRunes("p"), core.ActionPickColor, false},
		{"y", keyRunes("y"), core.ActionYank, false},
		{"t", keyRunes("t"), core.ActionTheme, false},
		{"?", keyRunes("?"), core.ActionHelp, false},
		{"q", keyRunes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", keyRunes("x"), core.ActionNone, false},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%s) = %v, %v; expected %v, %v", tc.name, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapPromptKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		// Letters are text while a prompt is open, q included.
		{"q", keyRunes("q"), core.ActionNone},
		{"digit", keyRunes("7"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapPromptKey(tc.msg); got != tc.action {
				t.Errorf("MapPromptKey(%s) = %v, expected %v", tc.name, got, tc.action)
			}
		})
	}
}

func TestHelpListsEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()
	count := 0
	for _, col := range keys.FullHelp() {
		count += len(col)
	}
	if count != 10 {
		t.Errorf("full help lists %d bindings, expected 10", count)
	}
}
