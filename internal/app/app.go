// Package app wires the BookFlix pieces together and runs the TUI.
package app

import (
	"context"
	"fmt"

	"bookflix/internal/config"
	"bookflix/internal/library"
	"bookflix/internal/openlibrary"
	"bookflix/internal/prefs"
	"bookflix/internal/ui"
)

// Options configure the BookFlix application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bookflix/prefs.toml
}

// Run boots the BookFlix TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	catalog, err := openlibrary.NewClient(openlibrary.Options{
		BaseURL:    cfg.CatalogURL,
		CoversBase: cfg.CoversURL,
		UserAgent:  cfg.UserAgent,
		RPS:        cfg.RequestRPS,
	})
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	port, err := library.NewFilePort(cfg.LibraryPath)
	if err != nil {
		return fmt.Errorf("init library storage: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Catalog:   catalog,
		Library:   library.Open(port),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
