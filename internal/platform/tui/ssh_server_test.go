package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHostKeyDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := resolveHostKey("")
	if err != nil {
		t.Fatalf("resolveHostKey() failed: %v", err)
	}
	if want := filepath.Join(home, ".etch", "host_key"); path != want {
		t.Errorf("path = %s, expected %s", path, want)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("host key directory not created: %v", err)
	}
}

func TestResolveHostKeyCustom(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "id")

	path, err := resolveHostKey(want)
	if err != nil {
		t.Fatalf("resolveHostKey() failed: %v", err)
	}
	if path != want {
		t.Errorf("path = %s, expected %s", path, want)
	}
	if _, err := os.Stat(filepath.Dir(want)); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.IdleTimeout <= 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Sketch.Validate(); err != nil {
		t.Errorf("default sketch config invalid: %v", err)
	}
}
