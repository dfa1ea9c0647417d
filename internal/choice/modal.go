package choice

import (
	"github.com/golang/glog"
	"github.com/oklog/ulid/v2"

	"github.com/five82/rowbind/internal/observable"
)

// checker is a concrete mode a Modal can wrap.
type checker interface {
	Mode
	setChecked(id int64, checked, fromUser bool)
}

// ModalOption configures a Modal.
type ModalOption func(*Modal)

// WithFinishOnClear sets whether unchecking the last item closes the
// session. The default is true.
func WithFinishOnClear(v bool) ModalOption {
	return func(m *Modal) { m.finishOnClear = v }
}

// WithStartOnSingleTap sets whether a click opens the session. By default
// only a long click does.
func WithStartOnSingleTap(v bool) ModalOption {
	return func(m *Modal) { m.startOnSingleTap = v }
}

// Modal adds an action session to a Single or Multiple mode. Selection is only
// possible while the session is open; checking an item while it is closed
// opens it first.
type Modal struct {
	inner     checker
	starter   ActionSessionStarter
	callbacks SessionCallbacks
	observers observable.Registry[Observer]
	watch     *modalWatch

	session   Session
	adapter   *sessionAdapter
	sessionID ulid.ULID
	activated bool

	finishOnClear    bool
	startOnSingleTap bool

	// closing suppresses finish-on-clear while a session is torn down.
	closing bool
	// suspending keeps choices when the session closes because the last
	// observer went away.
	suspending bool
}

// Ensure Modal implements Mode at compile time.
var _ Mode = (*Modal)(nil)

// NewSingleModal returns a modal Single mode. starter may be nil, in which
// case the session is tracked without a host-side counterpart.
func NewSingleModal(starter ActionSessionStarter, callbacks SessionCallbacks, opts ...ModalOption) *Modal {
	return newModal(NewSingle(), starter, callbacks, opts)
}

// NewMultipleModal returns a modal Multiple mode.
func NewMultipleModal(starter ActionSessionStarter, callbacks SessionCallbacks, opts ...ModalOption) *Modal {
	return newModal(NewMultiple(), starter, callbacks, opts)
}

func newModal(inner checker, starter ActionSessionStarter, callbacks SessionCallbacks, opts []ModalOption) *Modal {
	m := &Modal{
		inner:         inner,
		starter:       starter,
		callbacks:     callbacks,
		finishOnClear: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.watch = &modalWatch{m: m}
	inner.RegisterObserver(m.watch)
	return m
}

func (m *Modal) OnClick(id int64) bool {
	if id == NoID {
		return false
	}
	if !m.activated {
		if !m.startOnSingleTap {
			return false
		}
		return m.openAndCheck(id, true)
	}
	return m.inner.OnClick(id)
}

func (m *Modal) OnLongClick(id int64) bool {
	if id == NoID {
		return false
	}
	if !m.activated {
		return m.openAndCheck(id, true)
	}
	return m.inner.OnClick(id)
}

// IsActivated reports whether the session is open.
func (m *Modal) IsActivated() bool { return m.activated }

func (m *Modal) IsItemChecked(id int64) bool { return m.inner.IsItemChecked(id) }

func (m *Modal) SetItemChecked(id int64, checked bool) {
	if id == NoID {
		return
	}
	if checked && !m.activated {
		m.openAndCheck(id, false)
		return
	}
	m.inner.setChecked(id, checked, false)
}

func (m *Modal) CheckedItemCount() int   { return m.inner.CheckedItemCount() }
func (m *Modal) CheckedItemIDs() []int64 { return m.inner.CheckedItemIDs() }

// ClearChoices unchecks everything. With finish-on-clear this closes the
// session.
func (m *Modal) ClearChoices() { m.inner.ClearChoices() }

func (m *Modal) RequiresStableIDs() bool { return true }

// RegisterObserver adds o. If items are still checked while the session is
// closed, as after a host re-attach, the session is reopened.
func (m *Modal) RegisterObserver(o Observer) {
	if o == nil || !m.observers.Register(o) {
		return
	}
	if !m.activated && m.inner.CheckedItemCount() > 0 {
		m.openSession()
	}
}

// UnregisterObserver removes o. Removing the last observer closes the
// session while keeping the checked items.
func (m *Modal) UnregisterObserver(o Observer) {
	if o == nil || !m.observers.Unregister(o) {
		return
	}
	if m.observers.Len() == 0 && m.activated {
		m.endSession(false)
	}
}

// Finish closes the session, clearing choices first.
func (m *Modal) Finish() {
	m.endSession(true)
}

// PerformAction forwards action to the session callbacks. It reports false
// when no session is open.
func (m *Modal) PerformAction(action string) bool {
	if !m.activated || m.callbacks == nil {
		return false
	}
	return m.callbacks.OnSessionAction(m.session, action)
}

// SessionID returns the identifier of the open session, or the zero ULID.
func (m *Modal) SessionID() ulid.ULID {
	if !m.activated {
		return ulid.ULID{}
	}
	return m.sessionID
}

// FinishOnClear reports the finish-on-clear policy.
func (m *Modal) FinishOnClear() bool { return m.finishOnClear }

// SetFinishOnClear changes the finish-on-clear policy. Enabling it while the
// session is open with nothing checked closes the session.
func (m *Modal) SetFinishOnClear(v bool) {
	m.finishOnClear = v
	m.maybeFinishOnClear()
}

// StartOnSingleTap reports whether a click opens the session.
func (m *Modal) StartOnSingleTap() bool { return m.startOnSingleTap }

// SetStartOnSingleTap changes whether a click opens the session.
func (m *Modal) SetStartOnSingleTap(v bool) { m.startOnSingleTap = v }

func (m *Modal) Save() State {
	st := m.inner.Save()
	st.Activated = m.activated
	return st
}

// Restore adopts the checked identities of st. The session is reopened iff
// something is checked; the saved Activated flag is informational.
func (m *Modal) Restore(st State) {
	m.inner.Restore(st)
	if !m.activated && m.inner.CheckedItemCount() > 0 && m.observers.Len() > 0 {
		m.openSession()
	}
}

func (m *Modal) openAndCheck(id int64, fromUser bool) bool {
	if !m.openSession() {
		return false
	}
	m.inner.setChecked(id, true, fromUser)
	return true
}

func (m *Modal) openSession() bool {
	if m.activated {
		return true
	}
	adapter := &sessionAdapter{m: m}
	var s Session
	if m.starter != nil {
		m.adapter = adapter
		s = m.starter.Start(adapter)
		if s == nil {
			m.adapter = nil
			glog.V(1).Infof("[choice] action session refused")
			return false
		}
	} else {
		if m.callbacks != nil && !m.callbacks.OnCreateSession(nil) {
			return false
		}
	}
	m.adapter = adapter
	m.session = s
	m.activated = true
	m.sessionID = ulid.Make()
	glog.V(2).Infof("[choice] session %s opened checked=%d", m.sessionID, m.inner.CheckedItemCount())
	return true
}

func (m *Modal) endSession(clear bool) {
	if !m.activated {
		return
	}
	m.suspending = !clear
	defer func() { m.suspending = false }()

	if m.session != nil {
		m.session.Finish()
	}
	// The host did not answer Finish with OnDestroySession.
	if m.activated {
		m.destroyed(m.session, !m.suspending)
	}
}

// destroyed tears the session down. With clear set, choices are cleared
// before the destroy is forwarded. A suspension passes clear=false and
// forwards the destroy with the checked ids intact.
func (m *Modal) destroyed(s Session, clear bool) {
	if !m.activated || m.closing {
		return
	}
	m.closing = true
	if clear {
		m.inner.ClearChoices()
	}
	id := m.sessionID
	m.activated = false
	m.session = nil
	m.adapter = nil
	m.closing = false

	glog.V(2).Infof("[choice] session %s closed cleared=%t", id, clear)
	if m.callbacks != nil {
		m.callbacks.OnDestroySession(s)
	}
}

func (m *Modal) maybeFinishOnClear() {
	if m.closing || !m.activated || !m.finishOnClear {
		return
	}
	if m.inner.CheckedItemCount() == 0 {
		m.endSession(true)
	}
}

// modalWatch observes the wrapped mode and relays to the modal's observers.
type modalWatch struct {
	m *Modal
}

func (w *modalWatch) OnItemCheckedStateChanged(id int64, checked, fromUser bool) {
	m := w.m
	m.observers.Notify(func(o Observer) { o.OnItemCheckedStateChanged(id, checked, fromUser) })
	if m.activated && !m.closing {
		if m.callbacks != nil {
			m.callbacks.OnSessionItemCheckedStateChanged(m.session, id, checked)
		}
		if m.session != nil {
			m.session.Invalidate()
		}
	}
	m.maybeFinishOnClear()
}

func (w *modalWatch) OnAllItemsCheckedStateChanged(fromUser bool) {
	m := w.m
	m.observers.Notify(func(o Observer) { o.OnAllItemsCheckedStateChanged(fromUser) })
	if m.activated && !m.closing && m.session != nil {
		m.session.Invalidate()
	}
	m.maybeFinishOnClear()
}

// sessionAdapter is what the host sees; it sequences the callbacks.
type sessionAdapter struct {
	m *Modal
}

func (a *sessionAdapter) current() bool { return a.m.adapter == a }

func (a *sessionAdapter) OnCreateSession(s Session) bool {
	if !a.current() {
		return false
	}
	if a.m.callbacks == nil {
		return true
	}
	return a.m.callbacks.OnCreateSession(s)
}

func (a *sessionAdapter) OnPrepareSession(s Session) bool {
	if !a.current() || a.m.callbacks == nil {
		return false
	}
	return a.m.callbacks.OnPrepareSession(s)
}

func (a *sessionAdapter) OnSessionAction(s Session, action string) bool {
	if !a.current() || a.m.callbacks == nil {
		return false
	}
	return a.m.callbacks.OnSessionAction(s, action)
}

func (a *sessionAdapter) OnDestroySession(s Session) {
	if !a.current() {
		return
	}
	a.m.destroyed(s, !a.m.suspending)
}

func (a *sessionAdapter) OnSessionItemCheckedStateChanged(s Session, id int64, checked bool) {
	if !a.current() || a.m.callbacks == nil {
		return
	}
	a.m.callbacks.OnSessionItemCheckedStateChanged(s, id, checked)
}
