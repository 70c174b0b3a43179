package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Amii911/AlgoTrack/internal/api"
	"github.com/Amii911/AlgoTrack/internal/auth"
	"github.com/Amii911/AlgoTrack/internal/config"
	"github.com/Amii911/AlgoTrack/internal/prefs"
	"github.com/Amii911/AlgoTrack/internal/state"
	"github.com/Amii911/AlgoTrack/internal/tracker"
	"github.com/Amii911/AlgoTrack/internal/ui"
)

// Options configure the AlgoTrack application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/algotrack/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the AlgoTrack TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := api.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	session := auth.NewManager(client)
	catalog := state.NewCatalogStore(client)
	attempts := state.NewAttemptStore(client, session)
	coordinator := tracker.New(session, catalog, attempts)

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background catalog poller
	StartPoller(ctx, catalog, interval)

	// Populate the catalog and pick up any existing session before the
	// UI starts. Failures are not fatal; the stores record them.
	initCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	_, _ = catalog.LoadAll(initCtx)
	_ = session.Refresh(initCtx)
	cancel()

	uiOpts := ui.Options{
		Context:     ctx,
		Session:     session,
		Catalog:     catalog,
		Attempts:    attempts,
		Coordinator: coordinator,
		Timeout:     cfg.RequestTimeout,
		ThemeName:   userPrefs.Theme,
		PageSize:    userPrefs.PageSize,
		PrefsPath:   opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
