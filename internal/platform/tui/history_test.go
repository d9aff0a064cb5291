package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-etch/internal/storage"
)

func TestSessionRows(t *testing.T) {
	start := time.Date(2026, 3, 4, 15, 6, 0, 0, time.Local)
	rows := SessionRows([]storage.Session{
		{User: "ann", Remote: true, Strokes: 3, Darkens: 2, FinalSize: 24, StartedAt: start, EndedAt: start.Add(90 * time.Second)},
		{User: "bo", FinalSize: 16, StartedAt: start, EndedAt: start},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"Mar 04 15:06", "ann", "ssh", "5", "24×24", "1m30s"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][2] != "local" || rows[1][5] != "0s" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestHistoryViewEmpty(t *testing.T) {
	m := NewHistoryModel(nil, storage.Totals{}, DefaultTheme(), 100, 30)
	view := m.View()

	if !strings.Contains(view, "No sessions recorded yet.") {
		t.Error("expected empty message")
	}
	if !strings.Contains(view, "Totals") {
		t.Error("expected totals sidebar on a wide screen")
	}
}

func TestHistoryNarrowHidesTotals(t *testing.T) {
	m := NewHistoryModel(nil, storage.Totals{}, DefaultTheme(), 100, 30)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	if strings.Contains(next.View(), "Totals") {
		t.Error("totals shown on a narrow screen")
	}
}

func TestHistoryQuit(t *testing.T) {
	m := NewHistoryModel(nil, storage.Totals{}, DefaultTheme(), 100, 30)
	next, cmd := m.Update(keyRunes("q"))

	if !isQuit(cmd) {
		t.Error("expected quit command")
	}
	if next.View() != "" {
		t.Error("expected empty view after quit")
	}
}
