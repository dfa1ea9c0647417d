package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/five82/rowbind/internal/choice"
)

func writePrefs(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string // relative to HOME; empty means no file
		content string
		arg     string // Load argument relative to HOME; empty loads the default path
		want    string
	}{
		{"missing file", "", "", "", defaultTheme},
		{"default path", ".config/rowbind/prefs.toml", "theme = \"Nord\"\n", "", "Nord"},
		{"explicit path", "custom.toml", "theme = \"Gruvbox\"\n", "custom.toml", "Gruvbox"},
		{"empty theme", "prefs.toml", "theme = \"\"\n", "prefs.toml", defaultTheme},
		{"invalid toml", "prefs.toml", "not valid toml {{{\n", "prefs.toml", defaultTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			if tt.file != "" {
				writePrefs(t, filepath.Join(home, tt.file), tt.content)
			}
			arg := ""
			if tt.arg != "" {
				arg = filepath.Join(home, tt.arg)
			}

			p, err := Load(arg)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if p.Theme != tt.want {
				t.Fatalf("Theme = %q, want %q", p.Theme, tt.want)
			}
		})
	}
}

func TestSave_CreatesDirsAndReplacesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")
	prefsFile := filepath.Join(dir, "prefs.toml")

	for _, theme := range []string{"Nord", "Gruvbox"} {
		if err := Save(prefsFile, Prefs{Theme: theme}); err != nil {
			t.Fatalf("Save(%s) returned error: %v", theme, err)
		}
		loaded, err := Load(prefsFile)
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if loaded.Theme != theme {
			t.Fatalf("Theme = %q, want %q", loaded.Theme, theme)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("prefs dir has %d entries, want only prefs.toml", len(entries))
	}
}

func TestSelection_RoundTripsThroughFile(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")

	p := Prefs{Theme: "Nord"}
	st := choice.State{Checked: []int64{3, 11}, Activated: true}
	p.SetSelection("multiple-modal", st)
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	got, ok := loaded.SelectionFor("multiple-modal")
	assert.Equal(t, ok, true)
	assert.Equal(t, got.Checked, []int64{3, 11})
	assert.Equal(t, got.Activated, true)

	// A selection saved from another mode is not applied.
	_, ok = loaded.SelectionFor("single")
	assert.Equal(t, ok, false)
}

func TestSelection_StoredAsTable(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	writePrefs(t, prefsFile, `theme = "Nord"
selection_mode = "single"

[selection]
checked = [9]
`)

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	got, ok := p.SelectionFor("single")
	assert.Equal(t, ok, true)
	assert.Equal(t, got.Checked, []int64{9})
	assert.Equal(t, got.Activated, false)

	var saved Prefs
	saved.SetSelection("single", choice.State{Checked: []int64{2, 4}})
	if err := Save(prefsFile, saved); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	data, err := os.ReadFile(prefsFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[selection]") {
		t.Fatalf("prefs file has no [selection] table:\n%s", data)
	}
}

func TestSelection_EmptyClears(t *testing.T) {
	p := Prefs{SelectionMode: "single", Selection: &choice.State{Checked: []int64{1}}}
	p.SetSelection("single", choice.State{})
	assert.Equal(t, p.SelectionMode, "")
	assert.Equal(t, p.Selection == nil, true)

	_, ok := p.SelectionFor("single")
	assert.Equal(t, ok, false)

	// An empty table in the file is treated as no selection.
	empty := Prefs{SelectionMode: "single", Selection: &choice.State{}}
	_, ok = empty.SelectionFor("single")
	assert.Equal(t, ok, false)
}
