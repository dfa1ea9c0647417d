package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/rowbind/internal/choice"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantCatalog, err := expandPath(defaultCatalogPath)
	if err != nil {
		t.Fatalf("expandPath(defaultCatalogPath) returned error: %v", err)
	}
	if cfg.Catalog != wantCatalog {
		t.Fatalf("Catalog = %q, want %q", cfg.Catalog, wantCatalog)
	}
	if cfg.ChoiceMode != (choice.Spec{Kind: choice.KindMultiple, Modal: true}) {
		t.Fatalf("ChoiceMode = %v, want multiple-modal", cfg.ChoiceMode)
	}
	if !cfg.FinishOnClear || cfg.StartOnSingleTap || !cfg.DetectMoves {
		t.Fatalf("flags = %+v, want finish_on_clear and detect_moves only", cfg)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Fatalf("PollInterval = %v, want 2s", cfg.PollInterval)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
catalog = "  ~/lists/items.yaml  "
choice_mode = " single "
finish_on_clear = false
start_on_single_tap = true
detect_moves = false
poll_seconds = 7
log_verbosity = 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog != filepath.Join(home, "lists/items.yaml") {
		t.Fatalf("Catalog = %q, want it under HOME %q", cfg.Catalog, home)
	}
	if cfg.ChoiceMode != (choice.Spec{Kind: choice.KindSingle}) {
		t.Fatalf("ChoiceMode = %v, want single", cfg.ChoiceMode)
	}
	if cfg.FinishOnClear || !cfg.StartOnSingleTap || cfg.DetectMoves {
		t.Fatalf("flags = %+v, want explicit overrides", cfg)
	}
	if cfg.PollInterval != 7*time.Second {
		t.Fatalf("PollInterval = %v, want 7s", cfg.PollInterval)
	}
	if cfg.LogVerbosity != 3 {
		t.Fatalf("LogVerbosity = %d, want 3", cfg.LogVerbosity)
	}
	if len(cfg.ModalOptions()) != 2 {
		t.Fatalf("ModalOptions() len = %d, want 2", len(cfg.ModalOptions()))
	}
}

func TestLoad_RemoteCatalogKeptVerbatim(t *testing.T) {
	path := writeConfig(t, `catalog = "https://example.com/catalog.json"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog != "https://example.com/catalog.json" {
		t.Fatalf("Catalog = %q", cfg.Catalog)
	}
	if !cfg.CatalogIsRemote() {
		t.Fatal("CatalogIsRemote() = false, want true")
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"choice mode", `choice_mode = "sometimes"`, "choice_mode"},
		{"poll seconds", `poll_seconds = 0`, "poll_seconds"},
		{"verbosity", `log_verbosity = 9`, "log_verbosity"},
		{"toml", `catalog = [`, "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("Load returned nil error, want %s error", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %s", err.Error(), tt.want)
			}
		})
	}

	_, err := Load(writeConfig(t, `choice_mode = "sometimes"`))
	if !errors.Is(err, choice.ErrUnknownMode) {
		t.Fatalf("Load error = %v, want ErrUnknownMode", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
