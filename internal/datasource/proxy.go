package datasource

import (
	"github.com/golang/glog"

	"github.com/five82/rowbind/internal/diff"
)

// Strategy identifies how a Swap translated the change into events.
type Strategy uint8

const (
	// StrategyNone means no swap has happened yet.
	StrategyNone Strategy = iota
	// StrategyInsertAll is the empty-baseline fast path: one RangeInserted.
	StrategyInsertAll
	// StrategyDiff dispatched the diff engine's edit script.
	StrategyDiff
	// StrategyFullChange emitted one RangeChanged over the new content.
	StrategyFullChange
)

func (s Strategy) String() string {
	switch s {
	case StrategyInsertAll:
		return "insert-all"
	case StrategyDiff:
		return "diff"
	case StrategyFullChange:
		return "full-change"
	default:
		return "none"
	}
}

// DiffFactory builds the diff callback comparing old and next.
type DiffFactory[E any] func(old, next Datasource[E]) diff.Callback

// ProxyOption configures a Proxy.
type ProxyOption[E any] func(*Proxy[E])

// WithDiffFactory makes Swap run the diff engine using callbacks built by f.
func WithDiffFactory[E any](f DiffFactory[E], detectMoves bool) ProxyOption[E] {
	return func(p *Proxy[E]) {
		p.factory = f
		p.detectMoves = detectMoves
	}
}

// WithDiff makes Swap run the diff engine using item predicates.
func WithDiff[E any](cb ItemCallback[E], detectMoves bool) ProxyOption[E] {
	return WithDiffFactory(NewItemDiffFactory(cb), detectMoves)
}

// Proxy owns the active Datasource and re-emits its events, so observers of
// the proxy never need to re-subscribe when the source is swapped.
type Proxy[E any] struct {
	Observable

	source      Datasource[E]
	factory     DiffFactory[E]
	detectMoves bool
	fwd         *forwarder
	last        Strategy
}

// Ensure Proxy implements Datasource at compile time.
var _ Datasource[int] = (*Proxy[int])(nil)

// NewProxy returns a proxy over initial. A nil initial source starts empty.
func NewProxy[E any](initial Datasource[E], opts ...ProxyOption[E]) *Proxy[E] {
	if initial == nil {
		initial = Empty[E]()
	}
	p := &Proxy[E]{source: initial}
	p.fwd = &forwarder{to: &p.Observable}
	for _, opt := range opts {
		opt(p)
	}
	p.source.RegisterObserver(p.fwd)
	return p
}

// Get returns the item at index in the active source.
func (p *Proxy[E]) Get(index int) (E, error) {
	return p.source.Get(index)
}

// Size returns the size of the active source.
func (p *Proxy[E]) Size() int {
	return p.source.Size()
}

// Source returns the active datasource.
func (p *Proxy[E]) Source() Datasource[E] {
	return p.source
}

// LastStrategy reports how the most recent Swap emitted its events.
func (p *Proxy[E]) LastStrategy() Strategy {
	return p.last
}

// HasDiff reports whether a diff factory is configured.
func (p *Proxy[E]) HasDiff() bool {
	return p.factory != nil
}

// Swap makes next the active source and emits the events describing the
// difference. The previous source is returned to the caller, who becomes
// responsible for releasing it.
func (p *Proxy[E]) Swap(next Datasource[E]) (Datasource[E], error) {
	if next == nil {
		return nil, ErrNilSource
	}

	old := p.source
	old.UnregisterObserver(p.fwd)
	oldSize := old.Size()

	p.source = next
	next.RegisterObserver(p.fwd)
	newSize := next.Size()

	switch {
	case oldSize == 0:
		p.last = StrategyInsertAll
		p.NotifyRangeInserted(0, newSize)
	case p.factory != nil:
		p.last = StrategyDiff
		res := diff.Calculate(p.factory(old, next), p.detectMoves)
		res.DispatchUpdatesTo(updateAdapter{to: &p.Observable})
	default:
		p.last = StrategyFullChange
		p.NotifyRangeChanged(0, newSize, nil)
	}

	if glog.V(2) {
		glog.Infof("[proxy] swap strategy=%s old=%d new=%d", p.last, oldSize, newSize)
	}
	return old, nil
}

// Close stops forwarding events from the active source.
func (p *Proxy[E]) Close() {
	p.source.UnregisterObserver(p.fwd)
}

// forwarder re-emits events of the active source verbatim.
type forwarder struct {
	to *Observable
}

func (f *forwarder) OnChanged() { f.to.NotifyChanged() }

func (f *forwarder) OnRangeChanged(start, count int, payload any) {
	f.to.NotifyRangeChanged(start, count, payload)
}

func (f *forwarder) OnRangeInserted(start, count int) { f.to.NotifyRangeInserted(start, count) }
func (f *forwarder) OnRangeRemoved(start, count int)  { f.to.NotifyRangeRemoved(start, count) }
func (f *forwarder) OnMoved(from, to int)             { f.to.NotifyMoved(from, to) }

// updateAdapter translates the diff engine's script into structural events.
type updateAdapter struct {
	to *Observable
}

func (u updateAdapter) Inserted(position, count int) { u.to.NotifyRangeInserted(position, count) }
func (u updateAdapter) Removed(position, count int)  { u.to.NotifyRangeRemoved(position, count) }
func (u updateAdapter) Moved(from, to int)           { u.to.NotifyMoved(from, to) }

func (u updateAdapter) Changed(position, count int, payload any) {
	u.to.NotifyRangeChanged(position, count, payload)
}
