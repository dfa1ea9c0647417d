package lifecycle

import (
	"github.com/golang/glog"

	"github.com/five82/rowbind/internal/choice"
)

// ChoiceBehavior keeps the checked state of Checkable rows in sync with a
// choice mode as rows are recycled and as the selection changes.
type ChoiceBehavior struct {
	t    *Tracker
	mode choice.Mode
	// painted holds the rows last painted as checked.
	painted map[Row]struct{}
}

// NewChoiceBehavior registers a ChoiceBehavior with t and subscribes it to
// mode. It fails when mode keys items by identity and the renderer cannot
// supply stable identities.
func NewChoiceBehavior(t *Tracker, mode choice.Mode) (*ChoiceBehavior, error) {
	if err := choice.CheckStableIDs("lifecycle.NewChoiceBehavior", mode, t.Renderer()); err != nil {
		return nil, err
	}
	b := &ChoiceBehavior{
		t:       t,
		mode:    mode,
		painted: make(map[Row]struct{}),
	}
	t.AddBehavior(b)
	mode.RegisterObserver(b)
	return b, nil
}

// Mode returns the observed choice mode.
func (b *ChoiceBehavior) Mode() choice.Mode { return b.mode }

// Close unsubscribes from the mode and the tracker. For modal modes this
// suspends an open session when b was the last observer.
func (b *ChoiceBehavior) Close() {
	b.mode.UnregisterObserver(b)
	b.t.RemoveBehavior(b)
	clear(b.painted)
}

func (b *ChoiceBehavior) OnAttached(row Row)        { b.sync(row) }
func (b *ChoiceBehavior) OnPositionChanged(row Row) { b.sync(row) }
func (b *ChoiceBehavior) OnRebound(row Row)         { b.sync(row) }

func (b *ChoiceBehavior) OnDetached(row Row) {
	delete(b.painted, row)
}

func (b *ChoiceBehavior) OnItemCheckedStateChanged(id int64, checked, fromUser bool) {
	if row, ok := b.t.r.FindRowForIdentity(id); ok && b.t.IsTracked(row) {
		b.sync(row)
	}
	if !checked {
		return
	}
	// A single-choice switch only announces the new item; repaint rows that
	// still show the previous one.
	for row := range b.painted {
		if !b.mode.IsItemChecked(b.t.r.IdentityOf(row)) {
			b.sync(row)
		}
	}
}

func (b *ChoiceBehavior) OnAllItemsCheckedStateChanged(fromUser bool) {
	rows := b.t.ActiveRows()
	glog.V(3).Infof("[lifecycle] resync checked state rows=%d", len(rows))
	for _, row := range rows {
		b.sync(row)
	}
}

func (b *ChoiceBehavior) sync(row Row) {
	if !CapabilitiesOf(row).Has(CapCheckable) {
		return
	}
	checked := b.mode.IsItemChecked(b.t.r.IdentityOf(row))
	if checked {
		b.painted[row] = struct{}{}
	} else {
		delete(b.painted, row)
	}
	row.(Checkable).SetChecked(checked)
}
