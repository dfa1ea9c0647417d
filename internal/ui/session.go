package ui

import (
	"github.com/golang/glog"

	"github.com/five82/rowbind/internal/choice"
)

// Session actions offered by the action bar.
const (
	actionCheckAll = "check-all"
	actionClear    = "clear"
)

// actionBar is the contextual bar shown above the list while a modal choice
// session is open. It is both the session starter and the session handle.
type actionBar struct {
	callbacks choice.SessionCallbacks
	open      bool
	title     string

	// refuse makes Start decline new sessions.
	refuse bool
}

// Ensure actionBar implements the session contracts at compile time.
var (
	_ choice.ActionSessionStarter = (*actionBar)(nil)
	_ choice.Session              = (*actionBar)(nil)
)

func (b *actionBar) Start(callbacks choice.SessionCallbacks) choice.Session {
	if b.refuse || b.open || callbacks == nil {
		return nil
	}
	if !callbacks.OnCreateSession(b) {
		glog.V(2).Info("[ui] action bar creation declined")
		return nil
	}
	b.callbacks = callbacks
	b.open = true
	callbacks.OnPrepareSession(b)
	return b
}

func (b *actionBar) Invalidate() {
	if b.open {
		b.callbacks.OnPrepareSession(b)
	}
}

func (b *actionBar) Finish() {
	if !b.open {
		return
	}
	cb := b.callbacks
	b.open = false
	b.callbacks = nil
	b.title = ""
	cb.OnDestroySession(b)
}

// Open reports whether a session is showing.
func (b *actionBar) Open() bool { return b.open }

// Title returns the text prepared for the bar.
func (b *actionBar) Title() string { return b.title }

// SetTitle is called from the prepare callback.
func (b *actionBar) SetTitle(title string) { b.title = title }
