package app

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/golang/glog"

	"github.com/five82/rowbind/internal/catalog"
	"github.com/five82/rowbind/internal/config"
	"github.com/five82/rowbind/internal/prefs"
	"github.com/five82/rowbind/internal/state"
	"github.com/five82/rowbind/internal/ui"
)

// Options configure the rowbind application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/rowbind/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
	NoWatch    bool   // disable reloading on catalog file changes
}

// Run boots the rowbind TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyVerbosity(cfg.LogVerbosity)

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	fetcher, err := catalog.NewSource(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("init catalog source: %w", err)
	}

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	var wake <-chan struct{}
	if !opts.NoWatch && !cfg.CatalogIsRemote() {
		wake, err = WatchCatalog(ctx, cfg.Catalog)
		if err != nil {
			// Polling still picks up changes.
			glog.Warningf("catalog watch disabled: %v", err)
		}
	}

	store := &state.Store{}

	// Populate the store before the UI starts so the first frame has rows.
	_ = refresh(ctx, store, fetcher)

	StartPoller(ctx, store, fetcher, interval, wake)

	glog.V(1).Infof("rowbind starting catalog=%s mode=%s interval=%s", cfg.Catalog, cfg.ChoiceMode, interval)
	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		PollTick:  time.Second,
	})
}

// applyVerbosity raises glog's -v to the configured level unless the
// command line already set one.
func applyVerbosity(level int) {
	if level <= 0 {
		return
	}
	if f := flag.Lookup("v"); f != nil && f.Value.String() != "0" {
		return
	}
	_ = flag.Set("v", strconv.Itoa(level))
}
