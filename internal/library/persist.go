package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Port is the persistence slot behind a Store: one load at construction,
// one full save after every mutation.
type Port interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FilePort persists the library as a single JSON file.
type FilePort struct {
	path string
}

const defaultLibraryPath = "~/.local/share/bookflix/library.json"

// DefaultLibraryPath returns the default library file path.
func DefaultLibraryPath() string {
	return defaultLibraryPath
}

// NewFilePort builds a FilePort for path, falling back to the default
// location when path is empty.
func NewFilePort(path string) (*FilePort, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &FilePort{path: resolved}, nil
}

// Load reads the persisted collection. A missing file yields an empty
// library; unreadable or malformed content is reported as an error so the
// caller can log it and degrade.
func (p *FilePort) Load() ([]Item, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read library: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}
	return items, nil
}

// Save writes the whole collection, creating directories as needed.
func (p *FilePort) Save(items []Item) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create library dir: %w", err)
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}

	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("write library: %w", err)
	}
	return nil
}

// MemoryPort keeps the serialized collection in memory. It backs tests and
// ephemeral runs where nothing should touch the filesystem.
type MemoryPort struct {
	data  []byte
	saves int
}

// Load decodes the last saved collection.
func (p *MemoryPort) Load() ([]Item, error) {
	if len(p.data) == 0 {
		return nil, nil
	}
	var items []Item
	if err := json.Unmarshal(p.data, &items); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}
	return items, nil
}

// Save serializes the collection, matching FilePort's on-disk shape.
func (p *MemoryPort) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}
	p.data = data
	p.saves++
	return nil
}

// Saves returns how many times Save has run.
func (p *MemoryPort) Saves() int {
	return p.saves
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultLibraryPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
