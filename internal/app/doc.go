// Package app wires configuration, catalog loading, state and the UI into
// the rowbind application.
//
// # Overview
//
// Run is the composition root:
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml
//	       ├─────> prefs.Load()         Theme and saved selection
//	       ├─────> catalog.NewSource()  File or HTTP fetcher
//	       ├─────> WatchCatalog()       fsnotify wake-ups (files only)
//	       ├─────> refresh()            First load before the UI starts
//	       ├─────> StartPoller()        Background reloads
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Polling Behavior
//
// The poller reloads the catalog every poll_seconds. While fetches fail it
// backs off exponentially, doubling the wait per consecutive failure up to
// 30 seconds; the first success resets it. A write to a file catalog wakes
// the poller at once, so edits show up without waiting for the next tick.
//
// The UI never talks to the catalog directly. It reads state.Store
// snapshots on its own tick and swaps a new datasource in only when the
// revision moved.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration (bad choice_mode, poll_seconds, log_verbosity)
//   - Empty or unparsable catalog location
//
// Recoverable errors (logged, polling continues):
//   - Fetch failures, including an invalid catalog document
//   - Watcher setup failures (polling alone is used)
//
// # Logging
//
// Logging goes through glog. The config's log_verbosity raises -v when the
// command line did not set it; -logtostderr and friends work as usual.
package app
