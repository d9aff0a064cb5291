package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-etch/internal/storage"
)

// History layout constants
const (
	minWidthForTotals = 80 // Minimum width to show the totals sidebar
	totalsWidth       = 22 // Width of the totals sidebar
)

// HistoryKeyMap defines the key bindings for the session history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the session history screen.
type HistoryModel struct {
	sessions   []storage.Session
	totals     storage.Totals
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	theme      Theme
	width      int
	height     int
	showTotals bool
	quitting   bool
}

// NewHistoryModel creates a history screen over already loaded sessions.
func NewHistoryModel(sessions []storage.Session, totals storage.Totals, theme Theme, width, height int) HistoryModel {
	m := HistoryModel{
		sessions:   sessions,
		totals:     totals,
		help:       help.New(),
		keys:       DefaultHistoryKeyMap(),
		theme:      theme,
		width:      width,
		height:     height,
		showTotals: width >= minWidthForTotals,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 12},
		{Title: "User", Width: 10},
		{Title: "Where", Width: 6},
		{Title: "Cells", Width: 6},
		{Title: "Grid", Width: 7},
		{Title: "Length", Width: 8},
	}

	height := m.height - 8 // Leave room for title, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded sessions.
func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(SessionRows(m.sessions))
	m.table.GotoTop()
}

// SessionRows formats sessions as table rows, newest first as given.
func SessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		where := "local"
		if s.Remote {
			where = "ssh"
		}
		rows[i] = table.Row{
			s.StartedAt.Format("Jan 02 15:04"),
			s.User,
			where,
			fmt.Sprintf("%d", s.Interactions()),
			fmt.Sprintf("%d×%d", s.FinalSize, s.FinalSize),
			s.Duration().Round(time.Second).String(),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showTotals = m.width >= minWidthForTotals
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("SESSIONS"))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	body := box.Render(m.renderTableContent())
	if m.showTotals {
		side := box.Width(totalsWidth).Render(m.renderTotals())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", side)
	}
	b.WriteString(body)

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		return m.theme.Status.
			Italic(true).
			Padding(2, 4).
			Render("No sessions recorded yet.\nRun 'etch draw' to start one!")
	}
	return m.table.View()
}

// renderTotals renders aggregate counts.
func (m HistoryModel) renderTotals() string {
	lines := []struct {
		label string
		value int
	}{
		{"sessions", m.totals.Sessions},
		{"cells", m.totals.Interactions},
		{"normal", m.totals.Strokes},
		{"rainbow", m.totals.Rainbow},
		{"darken", m.totals.Darkens},
	}

	var b strings.Builder
	b.WriteString("Totals\n")
	b.WriteString(strings.Repeat("-", totalsWidth-4))
	for _, l := range lines {
		fmt.Fprintf(&b, "\n%s %s", m.theme.Label.Render(fmt.Sprintf("%-9s", l.label)), m.theme.Value.Render(fmt.Sprintf("%d", l.value)))
	}
	return b.String()
}

// RunHistory loads recent sessions and shows them until the user quits.
func RunHistory(store *storage.Store, limit int, theme Theme, width, height int) error {
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}
	totals, err := store.SessionTotals()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(sessions, totals, theme, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
