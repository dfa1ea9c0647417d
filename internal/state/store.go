package state

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"github.com/five82/rowbind/internal/catalog"
)

// Snapshot represents the latest catalog available to the UI.
type Snapshot struct {
	Items       []catalog.Item
	Loaded      bool   // at least one fetch succeeded
	Revision    uint64 // bumped whenever Items changes
	LastUpdated time.Time
	LastError   error

	ConsecutiveFailures int // Number of consecutive fetch failures
}

// IsOffline returns true when the catalog has been unreachable for multiple
// polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the result of a fetch. When err is non-nil the previous
// items are kept but the error is recorded for visibility. Revision only
// moves when the items differ from the stored ones.
func (s *Store) Update(items []catalog.Item, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if !s.snapshot.Loaded || !slices.Equal(s.snapshot.Items, items) {
		s.snapshot.Items = cloneItems(items)
		s.snapshot.Revision++
	}
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = cloneItems(s.snapshot.Items)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Revision returns the current revision without copying the items.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Revision
}

func cloneItems(items []catalog.Item) []catalog.Item {
	if len(items) == 0 {
		return nil
	}
	return slices.Clone(items)
}
