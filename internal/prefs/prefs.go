// Package prefs handles rowbind user preferences persistence.
// Preferences are stored in ~/.config/rowbind/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"

	"github.com/five82/rowbind/internal/choice"
)

// Prefs holds user preferences for rowbind.
type Prefs struct {
	Theme string `toml:"theme"`

	// SelectionMode names the choice mode Selection was saved from.
	SelectionMode string        `toml:"selection_mode,omitempty"`
	Selection     *choice.State `toml:"selection,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/rowbind/prefs.toml"
	defaultTheme     = "Nightfox"
)

// SelectionFor returns the saved selection if it was saved from mode. A
// selection from another mode is ignored.
func (p Prefs) SelectionFor(mode string) (choice.State, bool) {
	if p.Selection == nil || p.Selection.IsEmpty() || !strings.EqualFold(p.SelectionMode, mode) {
		return choice.State{}, false
	}
	return choice.State{
		Checked:   slices.Clone(p.Selection.Checked),
		Activated: p.Selection.Activated,
	}, true
}

// SetSelection records st as saved from mode. An empty state clears it.
func (p *Prefs) SetSelection(mode string, st choice.State) {
	if st.IsEmpty() {
		p.SelectionMode = ""
		p.Selection = nil
		return
	}
	p.SelectionMode = mode
	p.Selection = &choice.State{Checked: slices.Clone(st.Checked), Activated: st.Activated}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path, or from DefaultPath when path is empty.
// Preferences are a convenience: a missing, unreadable or malformed file
// yields the defaults rather than an error.
func Load(path string) (Prefs, error) {
	p := Prefs{Theme: defaultTheme}
	resolved, err := resolvePath(path)
	if err != nil {
		return p, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p, nil
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: defaultTheme}, nil
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p, nil
}

// Save writes p to path, creating parent directories. The file is replaced
// through a rename so a crash never leaves half-written preferences behind.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(path), "~")
	if !ok {
		return filepath.Abs(strings.TrimSpace(path))
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, rest), nil
}
