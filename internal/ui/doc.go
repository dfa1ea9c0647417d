// Package ui provides the Bubble Tea terminal interface for rowbind.
//
// # Architecture Overview
//
// The UI hosts a virtualized list of catalog items and drives the selection
// machinery from the datasource, choice and lifecycle packages:
//
//	state.Store ──snapshot──> controller.swap ──> datasource.Proxy
//	                                                   │ structural events
//	                                                   v
//	lifecycle.Tracker <──attach/detach── List ──> rowView (pooled)
//	        │
//	        ├── EnabledBehavior    greys out disabled items
//	        ├── ChoiceBehavior     paints checked state from the choice mode
//	        └── LifecycleBehavior  start/resume/pause/stop from focus events
//
// # Package Structure
//
//   - app.go: Model, Options, message handling and the Run entry point
//   - controller.go: proxy, list, choice mode and behaviors wired together
//   - list.go: the List renderer and its row pool
//   - row.go: rowView, a recyclable row with every optional capability
//   - session.go: the action bar opened by modal choice modes
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go: color themes and Lipgloss styles
//   - layout.go: layout and timing constants
//
// # Rendering
//
// List applies datasource events to its bookkeeping only. Binding happens in
// Frame, called at the start of every render, which also runs the pre-render
// hooks the tracker uses to detect position changes. A catalog reload that
// arrives as a burst of diff events is therefore laid out once.
//
// # Key Bindings
//
// Navigation:
//   - j/k: Move cursor
//   - g/G: Top/bottom
//   - pgup/pgdown: Page
//
// Selection:
//   - Space/Enter: Click the cursor row
//   - v: Long-press the cursor row (opens a modal session)
//   - esc: Finish the session
//   - c: Clear the selection
//   - a: Check every enabled item
//   - x: Toggle the disabled filter
//
// General:
//   - T: Cycle theme
//   - ?: Toggle help
//   - q/ctrl+c: Quit, saving the selection to prefs
package ui
