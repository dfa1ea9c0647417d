// Package state shares the latest catalog between the background poller
// and the UI.
//
// # Overview
//
// The poller fetches the catalog on its own goroutine and records each
// result with Update. The UI reads a Snapshot on every tick and swaps a new
// datasource into the list only when Revision has moved:
//
//	Producer (poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ Fetch()        │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │ proxy.Swap()    │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	// Success: items replaced, revision bumped if they differ
//	store.Update(items, nil)
//	→ snapshot.Items = items
//	→ snapshot.Revision++ (only on change)
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Failure: items kept, error recorded
//	store.Update(nil, err)
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// An unchanged reload therefore costs the UI nothing: the revision stays
// put and no swap happens.
//
// # Snapshots
//
// Snapshot returns a copy. The item slice is cloned and the error is
// wrapped, so callers may keep or mutate the result without locking.
// IsOffline reports two or more consecutive failures; the poller uses
// ConsecutiveFailures to back off.
package state
