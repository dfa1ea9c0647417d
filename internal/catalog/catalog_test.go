package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileSource_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "catalog.toml",
			content: `
[[items]]
id = 1
title = "Alpha"
status = "queued"

[[items]]
id = 2
title = "Beta"
disabled = true
`,
		},
		{
			name: "yaml",
			file: "catalog.yaml",
			content: `
items:
  - id: 1
    title: Alpha
    status: queued
  - id: 2
    title: Beta
    disabled: true
`,
		},
		{
			name:    "json",
			file:    "catalog.json",
			content: `{"items":[{"id":1,"title":"Alpha","status":"queued"},{"id":2,"title":"Beta","disabled":true}]}`,
		},
	}

	want := []Item{
		{ID: 1, Title: "Alpha", Status: "queued"},
		{ID: 2, Title: "Beta", Disabled: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &FileSource{Path: writeFile(t, tt.file, tt.content)}
			got, err := src.Fetch(context.Background())
			if err != nil {
				t.Fatalf("Fetch returned error: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("len(items) = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("items[%d] = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestFileSource_EmptyYAML(t *testing.T) {
	src := &FileSource{Path: writeFile(t, "empty.yml", "")}
	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(got))
	}
}

func TestFileSource_Errors(t *testing.T) {
	missing := &FileSource{Path: filepath.Join(t.TempDir(), "nope.toml")}
	if _, err := missing.Fetch(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v, want ErrNotExist", err)
	}

	dup := &FileSource{Path: writeFile(t, "dup.toml", "[[items]]\nid = 3\n[[items]]\nid = 3\n")}
	if _, err := dup.Fetch(context.Background()); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate id error = %v, want ErrDuplicateID", err)
	}

	reserved := &FileSource{Path: writeFile(t, "reserved.toml", "[[items]]\nid = -1\n")}
	if _, err := reserved.Fetch(context.Background()); err == nil {
		t.Fatal("reserved id accepted")
	}

	unknown := &FileSource{Path: writeFile(t, "unknown.yaml", "items:\n  - id: 1\n    colour: red\n")}
	if _, err := unknown.Fetch(context.Background()); err == nil {
		t.Fatal("unknown yaml field accepted")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dup.Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled fetch error = %v, want context.Canceled", err)
	}
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/catalog":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Document{Items: []Item{{ID: 42, Title: "Disc"}}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	src, err := NewSource(server.URL + "/catalog")
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}
	if _, ok := src.(*Client); !ok {
		t.Fatalf("NewSource(http) = %T, want *Client", src)
	}

	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 42 {
		t.Fatalf("items = %+v, want one item with id 42", items)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}

	bad, _ := NewClient(server.URL + "/missing")
	if _, err := bad.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch of 404 succeeded")
	}
}

func TestNewSource(t *testing.T) {
	if _, err := NewSource("  "); err == nil {
		t.Fatal("NewSource(empty) succeeded")
	}
	src, err := NewSource("/tmp/catalog.yaml")
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}
	if fs, ok := src.(*FileSource); !ok || fs.Path != "/tmp/catalog.yaml" {
		t.Fatalf("NewSource(path) = %#v, want FileSource", src)
	}
	if _, err := parseEndpoint("http://"); err == nil {
		t.Fatal("parseEndpoint accepted url without host")
	}
}

func TestChangePayload(t *testing.T) {
	base := Item{ID: 1, Title: "A", Status: "queued"}
	tests := []struct {
		name string
		next Item
		want any
	}{
		{"title", Item{ID: 1, Title: "B", Status: "queued"}, "title"},
		{"status", Item{ID: 1, Title: "A", Status: "done"}, "status"},
		{"disabled", Item{ID: 1, Title: "A", Status: "queued", Disabled: true}, "disabled"},
		{"several", Item{ID: 1, Title: "B", Status: "done"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangePayload(base, tt.next); got != tt.want {
				t.Fatalf("ChangePayload = %v, want %v", got, tt.want)
			}
			if SameContent(base, tt.next) {
				t.Fatal("SameContent reported equal items")
			}
			if !SameItem(base, tt.next) {
				t.Fatal("SameItem reported different items")
			}
		})
	}
}

func TestItemLabels(t *testing.T) {
	if got := (Item{ID: 9}).DisplayTitle(); got != "Item #9" {
		t.Fatalf("DisplayTitle = %q", got)
	}
	if got := (Item{Status: "IN_PROGRESS"}).StatusLabel(); got != "in progress" {
		t.Fatalf("StatusLabel = %q", got)
	}
	if got := (Item{}).StatusLabel(); got != "ready" {
		t.Fatalf("StatusLabel = %q", got)
	}
}
