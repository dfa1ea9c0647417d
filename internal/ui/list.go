package ui

import (
	"github.com/golang/glog"
	"golang.org/x/exp/slices"

	"github.com/five82/rowbind/internal/catalog"
	"github.com/five82/rowbind/internal/choice"
	"github.com/five82/rowbind/internal/datasource"
	"github.com/five82/rowbind/internal/lifecycle"
	"github.com/five82/rowbind/internal/observable"
)

// List is a virtualized list over a catalog datasource. Only positions inside
// the window [offset, offset+height) have a bound row; rows leaving the
// window are detached and recycled through a free list.
//
// Structural events only adjust bookkeeping. Rows are bound to items on the
// next layout, which runs at the start of Frame or on any cursor move, so a
// burst of diff events never reads the source at intermediate positions.
type List struct {
	src    datasource.Datasource[catalog.Item]
	height int
	offset int
	cursor int

	// known is the source size implied by the events seen so far.
	known int
	dirty bool

	bound   []*rowView
	free    []*rowView
	created int

	listeners observable.Registry[lifecycle.AttachListener]
	hooks     observable.Registry[lifecycle.PreRenderHook]
}

// Ensure List implements the renderer and observer contracts at compile time.
var (
	_ lifecycle.Renderer  = (*List)(nil)
	_ datasource.Observer = (*List)(nil)
)

// NewList returns a list showing height rows of src and subscribes to it.
func NewList(src datasource.Datasource[catalog.Item], height int) *List {
	l := &List{src: src, height: max(height, 1)}
	src.RegisterObserver(l)
	l.layout()
	return l
}

// Close detaches every row and unsubscribes from the source.
func (l *List) Close() {
	l.src.UnregisterObserver(l)
	for len(l.bound) > 0 {
		l.detach(l.bound[len(l.bound)-1])
	}
}

// Height returns the number of visible rows.
func (l *List) Height() int { return l.height }

// SetHeight resizes the window.
func (l *List) SetHeight(height int) {
	height = max(height, 1)
	if height == l.height {
		return
	}
	l.height = height
	l.layout()
}

// Offset returns the first visible position.
func (l *List) Offset() int {
	l.flush()
	return l.offset
}

// Cursor returns the cursor position.
func (l *List) Cursor() int {
	l.flush()
	return l.cursor
}

// MoveCursor moves the cursor by delta rows, clamped to the source.
func (l *List) MoveCursor(delta int) {
	l.SetCursor(l.cursor + delta)
}

// SetCursor moves the cursor to pos, clamped, and scrolls it into view.
func (l *List) SetCursor(pos int) {
	l.cursor = pos
	l.layout()
}

// CursorRow returns the bound row under the cursor.
func (l *List) CursorRow() (*rowView, bool) {
	l.flush()
	for _, rv := range l.bound {
		if rv.pos == l.cursor {
			return rv, true
		}
	}
	return nil, false
}

// VisibleRows returns the bound rows ordered by position.
func (l *List) VisibleRows() []*rowView {
	l.flush()
	rows := slices.Clone(l.bound)
	slices.SortFunc(rows, func(a, b *rowView) int { return a.pos - b.pos })
	return rows
}

// RowsCreated reports how many rows the list has allocated.
func (l *List) RowsCreated() int { return l.created }

// Frame lays out pending changes and runs the pre-render hooks. Call it once
// before drawing.
func (l *List) Frame() {
	l.flush()
	l.hooks.NotifyForward(func(h lifecycle.PreRenderHook) { h.OnPreRender() })
}

// Animate advances the spinner of resumed rows.
func (l *List) Animate() {
	for _, rv := range l.bound {
		if rv.phase == lifecycle.PhaseResumed {
			rv.frame++
		}
	}
}

// Renderer contract.

func (l *List) AddAttachListener(a lifecycle.AttachListener) {
	if a != nil {
		l.listeners.Register(a)
	}
}

func (l *List) RemoveAttachListener(a lifecycle.AttachListener) {
	if a != nil {
		l.listeners.Unregister(a)
	}
}

func (l *List) AddPreRenderHook(h lifecycle.PreRenderHook) {
	if h != nil {
		l.hooks.Register(h)
	}
}

func (l *List) RemovePreRenderHook(h lifecycle.PreRenderHook) {
	if h != nil {
		l.hooks.Unregister(h)
	}
}

func (l *List) FindRowForIdentity(id int64) (lifecycle.Row, bool) {
	if id == choice.NoID {
		return nil, false
	}
	for _, rv := range l.bound {
		if rv.item.ID == id {
			return rv, true
		}
	}
	return nil, false
}

func (l *List) DisplayedRows() []lifecycle.Row {
	rows := slices.Clone(l.bound)
	slices.SortFunc(rows, func(a, b *rowView) int { return a.pos - b.pos })
	out := make([]lifecycle.Row, len(rows))
	for i, rv := range rows {
		out[i] = rv
	}
	return out
}

func (l *List) PositionOf(row lifecycle.Row) int {
	rv, ok := row.(*rowView)
	if !ok || rv.list != l {
		return lifecycle.NoPosition
	}
	return rv.pos
}

func (l *List) IdentityOf(row lifecycle.Row) int64 {
	rv, ok := row.(*rowView)
	if !ok || rv.list != l {
		return choice.NoID
	}
	return rv.item.ID
}

// HasStableIDs is always true: rows are keyed by catalog item ids.
func (l *List) HasStableIDs() bool { return true }

// Datasource observer.

func (l *List) OnChanged() {
	for len(l.bound) > 0 {
		l.detach(l.bound[len(l.bound)-1])
	}
	l.known = l.src.Size()
	l.dirty = true
}

func (l *List) OnRangeChanged(start, count int, payload any) {
	for _, rv := range l.bound {
		if rv.pos >= start && rv.pos < start+count {
			rv.stale = true
			rv.payload = payload
		}
	}
	l.dirty = true
}

func (l *List) OnRangeInserted(start, count int) {
	if count <= 0 {
		return
	}
	for _, rv := range l.bound {
		if rv.pos >= start {
			rv.pos += count
		}
	}
	if l.known > 0 && l.cursor >= start {
		l.cursor += count
	}
	l.known += count
	l.dirty = true
}

func (l *List) OnRangeRemoved(start, count int) {
	if count <= 0 {
		return
	}
	end := start + count
	for _, rv := range slices.Clone(l.bound) {
		switch {
		case rv.pos >= end:
			rv.pos -= count
		case rv.pos >= start:
			l.detach(rv)
		}
	}
	switch {
	case l.cursor >= end:
		l.cursor -= count
	case l.cursor >= start:
		l.cursor = start
	}
	l.known -= count
	l.dirty = true
}

func (l *List) OnMoved(from, to int) {
	for _, rv := range l.bound {
		rv.pos = movedPosition(rv.pos, from, to)
	}
	l.cursor = movedPosition(l.cursor, from, to)
	l.dirty = true
}

// movedPosition returns where pos ends up after the item at from moves to to.
func movedPosition(pos, from, to int) int {
	switch {
	case pos == from:
		return to
	case from < to && pos > from && pos <= to:
		return pos - 1
	case to < from && pos >= to && pos < from:
		return pos + 1
	}
	return pos
}

func (l *List) flush() {
	if l.dirty {
		l.layout()
	}
}

// layout clamps the cursor, scrolls it into view, detaches rows outside the
// window, rebinds stale rows and attaches rows for empty window slots.
func (l *List) layout() {
	l.dirty = false
	size := l.src.Size()
	l.known = size

	l.cursor = clamp(l.cursor, 0, size-1)
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
	l.offset = clamp(l.offset, 0, size-l.height)
	end := min(l.offset+l.height, size)

	occupied := make(map[int]bool, len(l.bound))
	for _, rv := range slices.Clone(l.bound) {
		if rv.pos < l.offset || rv.pos >= end {
			l.detach(rv)
			continue
		}
		if rv.stale {
			item, err := l.src.Get(rv.pos)
			if err != nil || item.ID != rv.item.ID {
				// A different item now lives here; rebind through a fresh attach.
				l.detach(rv)
				continue
			}
			rv.rebind(item)
			l.listeners.NotifyForward(func(a lifecycle.AttachListener) {
				if rl, ok := a.(lifecycle.ReboundListener); ok {
					rl.OnRowRebound(rv)
				}
			})
		}
		occupied[rv.pos] = true
	}

	for pos := l.offset; pos < end; pos++ {
		if occupied[pos] {
			continue
		}
		item, err := l.src.Get(pos)
		if err != nil {
			glog.Warningf("[ui] bind position %d: %v", pos, err)
			continue
		}
		l.attach(l.obtain(), pos, item)
	}
}

func (l *List) attach(rv *rowView, pos int, item catalog.Item) {
	rv.pos = pos
	rv.bind(item)
	l.bound = append(l.bound, rv)
	l.listeners.NotifyForward(func(a lifecycle.AttachListener) { a.OnRowAttached(rv) })
}

// detach unbinds rv. The row reports NoPosition but keeps its item while
// listeners see the detach.
func (l *List) detach(rv *rowView) {
	i := slices.Index(l.bound, rv)
	if i < 0 {
		return
	}
	l.bound = slices.Delete(l.bound, i, i+1)
	rv.pos = lifecycle.NoPosition
	l.listeners.NotifyForward(func(a lifecycle.AttachListener) { a.OnRowDetached(rv) })
	rv.reset()
	l.free = append(l.free, rv)
}

func (l *List) obtain() *rowView {
	if n := len(l.free); n > 0 {
		rv := l.free[n-1]
		l.free = l.free[:n-1]
		return rv
	}
	l.created++
	glog.V(3).Infof("[ui] row pool grew created=%d", l.created)
	return newRowView(l)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
