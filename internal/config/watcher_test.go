package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherWrite(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "vellum.toml")
	if err := os.WriteFile(cfgPath, []byte("tab_stop = 8\n"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	w, err := NewWatcher(cfgPath)
	if err != nil {
		t.Fatalf("NewWatcher error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(cfgPath, []byte("tab_stop = 4\n"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	select {
	case ev := <-w.Events():
		if ev.Path != w.Path() {
			t.Errorf("event path = %q, want %q", ev.Path, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change event after write")
	}
}

func TestWatcherRenameOver(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "vellum.toml")
	if err := os.WriteFile(cfgPath, []byte("tab_stop = 8\n"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	w, err := NewWatcher(cfgPath)
	if err != nil {
		t.Fatalf("NewWatcher error = %v", err)
	}
	defer w.Close()

	// Atomic replace, the way most editors save.
	tmpPath := filepath.Join(tmpDir, "vellum.toml.tmp")
	if err := os.WriteFile(tmpPath, []byte("tab_stop = 2\n"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	if err := os.Rename(tmpPath, cfgPath); err != nil {
		t.Fatalf("Rename error = %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no change event after rename over")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "vellum.toml")
	if err := os.WriteFile(cfgPath, []byte("tab_stop = 8\n"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	w, err := NewWatcher(cfgPath)
	if err != nil {
		t.Fatalf("NewWatcher error = %v", err)
	}
	defer w.Close()

	other := filepath.Join(tmpDir, "other.txt")
	if err := os.WriteFile(other, []byte("noise"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	select {
	case ev := <-w.Events():
		t.Errorf("unexpected event for sibling file: %+v", ev)
	case <-time.After(250 * time.Millisecond):
	}
}

func TestWatcherMissingFile(t *testing.T) {
	// The file itself may not exist yet; creation triggers an event.
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "vellum.toml")

	w, err := NewWatcher(cfgPath)
	if err != nil {
		t.Fatalf("NewWatcher error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(cfgPath, []byte("tab_stop = 4\n"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no change event after file creation")
	}
}

func TestWatcherClose(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "vellum.toml")
	if err := os.WriteFile(cfgPath, []byte(""), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	w, err := NewWatcher(cfgPath)
	if err != nil {
		t.Fatalf("NewWatcher error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close error = %v", err)
	}

	// Event channel is closed after Close.
	if _, ok := <-w.Events(); ok {
		t.Error("Events() should be closed after Close")
	}

	// Close again is safe.
	if err := w.Close(); err != nil {
		t.Errorf("Close again error = %v", err)
	}
}
