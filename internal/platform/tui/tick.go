// Package tui provides the Bubble Tea integration for the sketch pad.
// It hosts the paint core: mouse events go through the interaction router,
// the grid is projected onto terminal colors, and prompts replace the
// browser-style size and color dialogs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// alertDuration is how long an alert stays on the status line.
const alertDuration = 3 * time.Second

// AlertExpiredMsg clears the alert with the matching sequence number.
type AlertExpiredMsg struct {
	Seq int
}

// alertCmd returns a Bubble Tea command that expires alert seq after alertDuration.
func alertCmd(seq int) tea.Cmd {
	return tea.Tick(alertDuration, func(time.Time) tea.Msg {
		return AlertExpiredMsg{Seq: seq}
	})
}
