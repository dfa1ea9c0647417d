package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/rowbind/internal/choice"
)

// ErrDuplicateID is returned when two items share an identity.
var ErrDuplicateID = errors.New("duplicate item id")

// Item is one row of the catalog. ID must be stable across reloads; it is
// the identity selection is keyed by.
type Item struct {
	ID       int64  `json:"id" toml:"id" yaml:"id"`
	Title    string `json:"title" toml:"title" yaml:"title"`
	Status   string `json:"status,omitempty" toml:"status,omitempty" yaml:"status,omitempty"`
	Disabled bool   `json:"disabled,omitempty" toml:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Document is the on-disk and on-wire shape of a catalog.
type Document struct {
	Items []Item `json:"items" toml:"items" yaml:"items"`
}

// DisplayTitle returns the trimmed title, or a placeholder built from the ID.
func (i Item) DisplayTitle() string {
	if title := strings.TrimSpace(i.Title); title != "" {
		return title
	}
	return fmt.Sprintf("Item #%d", i.ID)
}

// StatusLabel normalizes Status for display.
func (i Item) StatusLabel() string {
	status := strings.ToLower(strings.TrimSpace(i.Status))
	if status == "" {
		return "ready"
	}
	return strings.ReplaceAll(status, "_", " ")
}

// Validate reports items whose identity cannot key a selection.
func Validate(items []Item) error {
	seen := make(map[int64]struct{}, len(items))
	for idx, item := range items {
		if item.ID == choice.NoID {
			return fmt.Errorf("item %d (%q): id %d is reserved", idx, item.Title, item.ID)
		}
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("item %d (%q): %w %d", idx, item.Title, ErrDuplicateID, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// SameItem and SameContent are the diff predicates for catalog rows.
func SameItem(a, b Item) bool    { return a.ID == b.ID }
func SameContent(a, b Item) bool { return a == b }

// ChangePayload names the field that changed when only one did, so a row
// can repaint partially.
func ChangePayload(a, b Item) any {
	switch {
	case a.Title != b.Title && a.Status == b.Status && a.Disabled == b.Disabled:
		return "title"
	case a.Title == b.Title && a.Status != b.Status && a.Disabled == b.Disabled:
		return "status"
	case a.Title == b.Title && a.Status == b.Status && a.Disabled != b.Disabled:
		return "disabled"
	default:
		return nil
	}
}
