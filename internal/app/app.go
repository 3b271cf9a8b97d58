// Package app wires configuration, the API client, the persisted listing
// stores, and the UI together.
package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bugraisin/emass-tui/internal/config"
	"github.com/bugraisin/emass-tui/internal/emass"
	"github.com/bugraisin/emass-tui/internal/lists"
	"github.com/bugraisin/emass-tui/internal/liststore"
	"github.com/bugraisin/emass-tui/internal/prefs"
	"github.com/bugraisin/emass-tui/internal/session"
	"github.com/bugraisin/emass-tui/internal/state"
	"github.com/bugraisin/emass-tui/internal/ui"
)

// Options configure the application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/emass/prefs.toml
}

// Run boots the TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := emass.NewClient(cfg.APIBase)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	sess := session.Load(cfg.SessionPath())
	if sess.LoggedIn() {
		client.SetToken(sess.Token)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	pinned := lists.NewPinned(cfg.DataDir)
	recent := lists.NewRecent(cfg.DataDir)
	favorites := emass.NewFavoritesClient(client)
	results := &state.Store{}

	// Another process writing the recent store shows up in this one's panel.
	stop, err := liststore.Watch(ctx, recent.Store())
	if err != nil {
		log.Printf("watch recent store: %v", err)
	} else {
		defer stop()
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Favorites: favorites,
		Results:   results,
		Pinned:    pinned,
		Recent:    recent,
		Config:    &cfg,
		Session:   sess,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
