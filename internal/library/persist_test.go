package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFilePort_MissingFileYieldsEmpty(t *testing.T) {
	tmp := t.TempDir()
	port, err := NewFilePort(filepath.Join(tmp, "library.json"))
	if err != nil {
		t.Fatalf("NewFilePort returned error: %v", err)
	}

	items, err := port.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %v, want empty", items)
	}
}

func TestFilePort_SaveThenLoad(t *testing.T) {
	tmp := t.TempDir()
	port, err := NewFilePort(filepath.Join(tmp, "nested", "library.json"))
	if err != nil {
		t.Fatalf("NewFilePort returned error: %v", err)
	}

	want := []Item{{
		Book:    testBook("/works/OL1W", "Dune"),
		Status:  StatusReading,
		AddedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}
	if err := port.Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := port.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got) != 1 || got[0].Book.ID != "/works/OL1W" || got[0].Status != StatusReading {
		t.Fatalf("Load = %#v, want saved item back", got)
	}
	if !got[0].AddedAt.Equal(want[0].AddedAt) {
		t.Fatalf("AddedAt = %v, want %v", got[0].AddedAt, want[0].AddedAt)
	}
}

func TestFilePort_MalformedFileReturnsError(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "library.json")
	if err := os.WriteFile(path, []byte("{not-json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	port, err := NewFilePort(path)
	if err != nil {
		t.Fatalf("NewFilePort returned error: %v", err)
	}
	if _, err := port.Load(); err == nil {
		t.Fatal("Load returned nil error for malformed file, want error")
	}

	// The store opens empty on top of it anyway.
	s := Open(port)
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestNewFilePort_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	port, err := NewFilePort("")
	if err != nil {
		t.Fatalf("NewFilePort returned error: %v", err)
	}
	if !filepath.IsAbs(port.path) {
		t.Fatalf("path = %q, want absolute", port.path)
	}
	if rel, err := filepath.Rel(home, port.path); err != nil || rel == "" || rel[0] == '.' {
		t.Fatalf("path = %q, want under home %q", port.path, home)
	}
}
