package choice

// Session is the handle of an open action session, typically a contextual
// toolbar shown while items are selected.
type Session interface {
	// Invalidate asks the host to re-run OnPrepareSession.
	Invalidate()
	// Finish closes the session. The host must answer with OnDestroySession.
	Finish()
}

// ActionSessionStarter opens action sessions. Start returns nil when the host
// refuses to open one.
type ActionSessionStarter interface {
	Start(callbacks SessionCallbacks) Session
}

// SessionCallbacks is the host-facing side of an action session.
type SessionCallbacks interface {
	// OnCreateSession is called once when the session opens. Returning false
	// refuses the session.
	OnCreateSession(s Session) bool
	// OnPrepareSession is called after creation and after each Invalidate.
	// It reports whether the session content changed.
	OnPrepareSession(s Session) bool
	// OnSessionAction handles an action and reports whether it was consumed.
	OnSessionAction(s Session, action string) bool
	// OnDestroySession is called once when the session closes. When the
	// session is dismissed (Finish, Session.Finish or finish-on-clear) the
	// choices are cleared before this call. When the last observer
	// unregisters, the session is suspended instead: this call arrives with
	// the checked ids intact so the next RegisterObserver can reopen it.
	OnDestroySession(s Session)
	OnSessionItemCheckedStateChanged(s Session, id int64, checked bool)
}

// SessionFuncs adapts closures to SessionCallbacks. Nil fields fall back to
// accepting the session and ignoring the event.
type SessionFuncs struct {
	Create      func(s Session) bool
	Prepare     func(s Session) bool
	Action      func(s Session, action string) bool
	Destroy     func(s Session)
	ItemChanged func(s Session, id int64, checked bool)
}

func (f *SessionFuncs) OnCreateSession(s Session) bool {
	if f.Create == nil {
		return true
	}
	return f.Create(s)
}

func (f *SessionFuncs) OnPrepareSession(s Session) bool {
	if f.Prepare == nil {
		return false
	}
	return f.Prepare(s)
}

func (f *SessionFuncs) OnSessionAction(s Session, action string) bool {
	if f.Action == nil {
		return false
	}
	return f.Action(s, action)
}

func (f *SessionFuncs) OnDestroySession(s Session) {
	if f.Destroy != nil {
		f.Destroy(s)
	}
}

func (f *SessionFuncs) OnSessionItemCheckedStateChanged(s Session, id int64, checked bool) {
	if f.ItemChanged != nil {
		f.ItemChanged(s, id, checked)
	}
}
