package lifecycle

// EnabledFunc decides whether the item at position with identity id is
// enabled.
type EnabledFunc func(id int64, position int) bool

// EnabledBehavior paints the enabled state of Enableable rows whenever they
// are attached, change position or are rebound in place.
type EnabledBehavior struct {
	t    *Tracker
	pred EnabledFunc
}

// NewEnabledBehavior registers an EnabledBehavior with t. A nil predicate
// enables every row.
func NewEnabledBehavior(t *Tracker, pred EnabledFunc) *EnabledBehavior {
	b := &EnabledBehavior{t: t, pred: pred}
	t.AddBehavior(b)
	return b
}

// SetPredicate replaces the predicate and repaints attached rows.
func (b *EnabledBehavior) SetPredicate(pred EnabledFunc) {
	b.pred = pred
	b.Refresh()
}

// Refresh repaints every attached row.
func (b *EnabledBehavior) Refresh() {
	for _, row := range b.t.ActiveRows() {
		b.apply(row)
	}
}

// Close unregisters the behavior from its tracker.
func (b *EnabledBehavior) Close() { b.t.RemoveBehavior(b) }

func (b *EnabledBehavior) OnAttached(row Row)        { b.apply(row) }
func (b *EnabledBehavior) OnPositionChanged(row Row) { b.apply(row) }
func (b *EnabledBehavior) OnRebound(row Row)        { b.apply(row) }
func (b *EnabledBehavior) OnDetached(Row)            {}

func (b *EnabledBehavior) apply(row Row) {
	if !CapabilitiesOf(row).Has(CapEnableable) {
		return
	}
	pos := b.t.r.PositionOf(row)
	if pos == NoPosition {
		return
	}
	enabled := b.pred == nil || b.pred(b.t.r.IdentityOf(row), pos)
	row.(Enableable).SetEnabled(enabled)
}
