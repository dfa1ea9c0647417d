package lifecycle

// Phase is the host lifecycle phase forwarded to rows.
type Phase uint8

const (
	PhaseStopped Phase = iota
	PhaseStarted
	PhaseResumed
)

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhaseResumed:
		return "resumed"
	default:
		return "stopped"
	}
}

// LifecycleBehavior forwards host start/resume/pause/stop signals to
// LifecycleAware rows. A row attached late is brought up to the current
// phase; a detached row is wound down to stopped.
type LifecycleBehavior struct {
	t     *Tracker
	phase Phase
}

// NewLifecycleBehavior registers a LifecycleBehavior with t in the stopped
// phase.
func NewLifecycleBehavior(t *Tracker) *LifecycleBehavior {
	b := &LifecycleBehavior{t: t}
	t.AddBehavior(b)
	return b
}

// Phase returns the current host phase.
func (b *LifecycleBehavior) Phase() Phase { return b.phase }

func (b *LifecycleBehavior) Start() {
	if b.phase >= PhaseStarted {
		return
	}
	b.phase = PhaseStarted
	b.each(false, LifecycleAware.OnStart)
}

// Resume starts first if needed.
func (b *LifecycleBehavior) Resume() {
	b.Start()
	if b.phase == PhaseResumed {
		return
	}
	b.phase = PhaseResumed
	b.each(false, LifecycleAware.OnResume)
}

func (b *LifecycleBehavior) Pause() {
	if b.phase != PhaseResumed {
		return
	}
	b.phase = PhaseStarted
	b.each(true, LifecycleAware.OnPause)
}

// Stop pauses first if needed.
func (b *LifecycleBehavior) Stop() {
	b.Pause()
	if b.phase == PhaseStopped {
		return
	}
	b.phase = PhaseStopped
	b.each(true, LifecycleAware.OnStop)
}

func (b *LifecycleBehavior) OnAttached(row Row) {
	r, ok := lifecycleAware(row)
	if !ok {
		return
	}
	if b.phase >= PhaseStarted {
		r.OnStart()
	}
	if b.phase == PhaseResumed {
		r.OnResume()
	}
}

func (b *LifecycleBehavior) OnPositionChanged(Row) {}

func (b *LifecycleBehavior) OnDetached(row Row) {
	r, ok := lifecycleAware(row)
	if !ok {
		return
	}
	if b.phase == PhaseResumed {
		r.OnPause()
	}
	if b.phase >= PhaseStarted {
		r.OnStop()
	}
}

// Close unregisters the behavior from its tracker.
func (b *LifecycleBehavior) Close() { b.t.RemoveBehavior(b) }

func (b *LifecycleBehavior) each(reverse bool, fn func(LifecycleAware)) {
	rows := b.t.ActiveRows()
	for i := range rows {
		row := rows[i]
		if reverse {
			row = rows[len(rows)-1-i]
		}
		if r, ok := lifecycleAware(row); ok {
			fn(r)
		}
	}
}

func lifecycleAware(row Row) (LifecycleAware, bool) {
	if !CapabilitiesOf(row).Has(CapLifecycleAware) {
		return nil, false
	}
	return row.(LifecycleAware), true
}
