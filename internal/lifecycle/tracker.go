package lifecycle

import (
	"github.com/golang/glog"
	"golang.org/x/exp/slices"
)

// PoolStats describes the position watcher pool.
type PoolStats struct {
	Created int // watchers allocated
	Reused  int // watchers taken from the free list
	Idle    int // watchers currently in the free list
}

// Tracker turns a renderer's attach and detach signals into row lifecycle
// events for its behaviors, and derives position changes by polling each
// attached row once per frame.
type Tracker struct {
	r         Renderer
	behaviors Composite
	bound     bool

	active map[Row]*positionWatcher
	order  []Row

	free    []*positionWatcher
	created int
	reused  int
}

// Ensure Tracker implements AttachListener at compile time.
var (
	_ AttachListener  = (*Tracker)(nil)
	_ ReboundListener = (*Tracker)(nil)
)

// NewTracker returns an unbound tracker for r.
func NewTracker(r Renderer) *Tracker {
	return &Tracker{
		r:      r,
		active: make(map[Row]*positionWatcher),
	}
}

// Renderer returns the renderer the tracker observes.
func (t *Tracker) Renderer() Renderer { return t.r }

// AddBehavior registers b. Rows already attached are not replayed to b.
func (t *Tracker) AddBehavior(b Behavior) bool { return t.behaviors.Add(b) }

// RemoveBehavior unregisters b.
func (t *Tracker) RemoveBehavior(b Behavior) bool { return t.behaviors.Remove(b) }

// Bound reports whether the tracker is subscribed to the renderer.
func (t *Tracker) Bound() bool { return t.bound }

// Bind subscribes to the renderer and attaches every row it already
// displays.
func (t *Tracker) Bind() {
	if t.bound {
		return
	}
	t.bound = true
	t.r.AddAttachListener(t)
	rows := t.r.DisplayedRows()
	glog.V(2).Infof("[lifecycle] bind displayed=%d", len(rows))
	for _, row := range rows {
		t.OnRowAttached(row)
	}
}

// Unbind detaches every tracked row, newest first, and unsubscribes.
func (t *Tracker) Unbind() {
	if !t.bound {
		return
	}
	rows := slices.Clone(t.order)
	for i := len(rows) - 1; i >= 0; i-- {
		t.OnRowDetached(rows[i])
	}
	t.r.RemoveAttachListener(t)
	t.bound = false
	glog.V(2).Infof("[lifecycle] unbind released=%d", len(rows))
}

// OnRowAttached starts tracking row. Repeated attach signals are ignored.
func (t *Tracker) OnRowAttached(row Row) {
	if row == nil {
		return
	}
	if _, ok := t.active[row]; ok {
		return
	}
	w := t.obtain(row)
	w.last = t.r.PositionOf(row)
	t.r.AddPreRenderHook(w)
	t.active[row] = w
	t.order = append(t.order, row)

	if glog.V(3) {
		glog.Infof("[lifecycle] attached pos=%d caps=%s", w.last, CapabilitiesOf(row))
	}
	t.behaviors.OnAttached(row)
}

// OnRowDetached stops tracking row. The row stays tracked while behaviors
// see the detach.
func (t *Tracker) OnRowDetached(row Row) {
	w, ok := t.active[row]
	if !ok {
		return
	}
	t.r.RemovePreRenderHook(w)
	t.behaviors.OnDetached(row)
	t.release(w)

	delete(t.active, row)
	if i := slices.Index(t.order, row); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	glog.V(3).Infof("[lifecycle] detached active=%d", len(t.order))
}

// OnRowRebound tells behaviors that a tracked row now shows new content for
// the same identity. Untracked rows are ignored.
func (t *Tracker) OnRowRebound(row Row) {
	if _, ok := t.active[row]; !ok {
		return
	}
	t.behaviors.OnRebound(row)
}

// ActiveRows returns the tracked rows in attach order.
func (t *Tracker) ActiveRows() []Row {
	return slices.Clone(t.order)
}

// IsTracked reports whether row is attached.
func (t *Tracker) IsTracked(row Row) bool {
	if row == nil {
		return false
	}
	_, ok := t.active[row]
	return ok
}

// LastPosition returns the position recorded for row at its last frame, or
// NoPosition if row is not tracked.
func (t *Tracker) LastPosition(row Row) int {
	if w, ok := t.active[row]; ok {
		return w.last
	}
	return NoPosition
}

// Capabilities returns the cached capabilities of row.
func (t *Tracker) Capabilities(row Row) Capability {
	return CapabilitiesOf(row)
}

// PoolStats returns watcher pool counters.
func (t *Tracker) PoolStats() PoolStats {
	return PoolStats{Created: t.created, Reused: t.reused, Idle: len(t.free)}
}

func (t *Tracker) obtain(row Row) *positionWatcher {
	var w *positionWatcher
	if n := len(t.free); n > 0 {
		w = t.free[n-1]
		t.free[n-1] = nil
		t.free = t.free[:n-1]
		t.reused++
	} else {
		w = &positionWatcher{t: t}
		t.created++
	}
	w.row = row
	w.last = NoPosition
	return w
}

func (t *Tracker) release(w *positionWatcher) {
	w.row = nil
	w.last = NoPosition
	t.free = append(t.free, w)
}

// positionWatcher polls one attached row for position changes.
type positionWatcher struct {
	t    *Tracker
	row  Row
	last int
}

func (w *positionWatcher) OnPreRender() {
	if w.row == nil {
		return
	}
	row := w.row
	pos := w.t.r.PositionOf(row)
	// The row is on its way out; a detach follows.
	if pos == NoPosition || pos == w.last {
		return
	}
	w.t.behaviors.OnPositionChanged(row)
	if w.row == row {
		w.last = pos
	}
}
