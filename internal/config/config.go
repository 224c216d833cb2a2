package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields BookFlix needs to reach the catalog and find
// its library file.
type Config struct {
	CatalogURL  string
	CoversURL   string
	LibraryPath string
	UserAgent   string
	RequestRPS  int
}

const (
	defaultConfigPath  = "~/.config/bookflix/config.toml"
	defaultCatalogURL  = "https://openlibrary.org"
	defaultCoversURL   = "https://covers.openlibrary.org/b/id"
	defaultLibraryPath = "~/.local/share/bookflix/library.json"
	defaultUserAgent   = "bookflix/0.1"
	defaultRequestRPS  = 2
)

// Load locates and parses the BookFlix config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CatalogURL:  defaultCatalogURL,
		CoversURL:   defaultCoversURL,
		LibraryPath: defaultLibraryPath,
		UserAgent:   defaultUserAgent,
		RequestRPS:  defaultRequestRPS,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogURL  string `toml:"catalog_url"`
		CoversURL   string `toml:"covers_url"`
		LibraryPath string `toml:"library_path"`
		UserAgent   string `toml:"user_agent"`
		RequestRPS  int    `toml:"request_rps"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CatalogURL); v != "" {
		cfg.CatalogURL = v
	}
	if v := strings.TrimSpace(raw.CoversURL); v != "" {
		cfg.CoversURL = v
	}
	if v := strings.TrimSpace(raw.LibraryPath); v != "" {
		cfg.LibraryPath = v
	}
	if v := strings.TrimSpace(raw.UserAgent); v != "" {
		cfg.UserAgent = v
	}
	if raw.RequestRPS > 0 {
		cfg.RequestRPS = raw.RequestRPS
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
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
