package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-etch/internal/config"
	"github.com/vovakirdan/tui-etch/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "etch.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWriteConfigAppliesPreferences(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetPreference(storage.PrefTheme, "neon"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeConfig(&buf, config.DefaultConfig(), store, false); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "theme: neon") {
		t.Errorf("saved theme missing from output:\n%s", buf.String())
	}
}

func TestWriteConfigResetPreferences(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetPreference(storage.PrefTheme, "neon"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeConfig(&buf, config.DefaultConfig(), store, true); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "theme: default") {
		t.Errorf("expected default theme after reset:\n%s", buf.String())
	}

	prefs, err := store.Preferences()
	if err != nil {
		t.Fatal(err)
	}
	if len(prefs) != 0 {
		t.Errorf("preferences left after reset: %v", prefs)
	}
}

func TestWriteConfigWithoutStore(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, config.DefaultConfig(), nil, true); err != nil {
		t.Fatalf("writeConfig() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "size: 16") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
