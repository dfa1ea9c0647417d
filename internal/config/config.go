package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/rowbind/internal/choice"
)

// Config captures how rowbind loads and selects catalog items.
type Config struct {
	Catalog          string // file path or http(s) URL
	ChoiceMode       choice.Spec
	FinishOnClear    bool
	StartOnSingleTap bool
	DetectMoves      bool
	PollInterval     time.Duration
	LogVerbosity     int
}

const (
	defaultConfigPath  = "~/.config/rowbind/config.toml"
	defaultCatalogPath = "~/.config/rowbind/catalog.toml"
	defaultChoiceMode  = "multiple-modal"
	defaultPollSeconds = 2
	maxLogVerbosity    = 4
)

// Default returns the configuration used when no file exists.
func Default() Config {
	spec, _ := choice.ParseSpec(defaultChoiceMode)
	return Config{
		Catalog:       mustExpand(defaultCatalogPath),
		ChoiceMode:    spec,
		FinishOnClear: true,
		DetectMoves:   true,
		PollInterval:  defaultPollSeconds * time.Second,
	}
}

// fileConfig mirrors the TOML document. Pointers distinguish an explicit
// false or zero from an absent key.
type fileConfig struct {
	Catalog          string `toml:"catalog"`
	ChoiceMode       string `toml:"choice_mode"`
	FinishOnClear    *bool  `toml:"finish_on_clear"`
	StartOnSingleTap *bool  `toml:"start_on_single_tap"`
	DetectMoves      *bool  `toml:"detect_moves"`
	PollSeconds      *int   `toml:"poll_seconds"`
	LogVerbosity     *int   `toml:"log_verbosity"`
}

// Load locates and parses the rowbind config, falling back to defaults when
// missing. Unknown choice modes and out-of-range values are errors.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if err := fc.apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", resolved, err)
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if catalog := strings.TrimSpace(fc.Catalog); catalog != "" {
		cfg.Catalog = expandCatalog(catalog)
	}
	if mode := strings.TrimSpace(fc.ChoiceMode); mode != "" {
		spec, err := choice.ParseSpec(mode)
		if err != nil {
			return fmt.Errorf("choice_mode: %w", err)
		}
		cfg.ChoiceMode = spec
	}
	setBool(&cfg.FinishOnClear, fc.FinishOnClear)
	setBool(&cfg.StartOnSingleTap, fc.StartOnSingleTap)
	setBool(&cfg.DetectMoves, fc.DetectMoves)

	if n := fc.PollSeconds; n != nil {
		if *n <= 0 {
			return fmt.Errorf("poll_seconds: must be positive, got %d", *n)
		}
		cfg.PollInterval = time.Duration(*n) * time.Second
	}
	if v := fc.LogVerbosity; v != nil {
		if *v < 0 || *v > maxLogVerbosity {
			return fmt.Errorf("log_verbosity: want 0-%d, got %d", maxLogVerbosity, *v)
		}
		cfg.LogVerbosity = *v
	}
	return nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// ModalOptions returns the session policy options for modal choice modes.
func (c Config) ModalOptions() []choice.ModalOption {
	return []choice.ModalOption{
		choice.WithFinishOnClear(c.FinishOnClear),
		choice.WithStartOnSingleTap(c.StartOnSingleTap),
	}
}

// CatalogIsRemote reports whether the catalog is fetched over HTTP.
func (c Config) CatalogIsRemote() bool {
	return strings.HasPrefix(c.Catalog, "http://") || strings.HasPrefix(c.Catalog, "https://")
}

func expandCatalog(location string) string {
	if strings.Contains(location, "://") {
		return location
	}
	return mustExpand(location)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// expandPath trims path, resolves a leading ~ against the home directory and
// makes the result absolute.
func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("empty path")
	}
	rest, ok := strings.CutPrefix(trimmed, "~")
	if !ok {
		return filepath.Abs(trimmed)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, rest), nil
}
