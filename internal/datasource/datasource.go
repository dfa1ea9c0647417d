package datasource

import (
	"github.com/five82/rowbind/internal/observable"
)

// Datasource is a read-only indexed view with structural change
// notifications. Items are referenced, not copied.
type Datasource[E any] interface {
	// Get returns the item at index, or a *RangeError when index is outside
	// [0, Size()).
	Get(index int) (E, error)
	Size() int
	RegisterObserver(o Observer)
	UnregisterObserver(o Observer)
}

// Observer receives structural events. Positions are post-operation for
// inserts, pre-operation for removals, and from/to for moves.
type Observer interface {
	OnChanged()
	OnRangeChanged(start, count int, payload any)
	OnRangeInserted(start, count int)
	OnRangeRemoved(start, count int)
	OnMoved(from, to int)
}

// BaseObserver routes every granular event to the Changed callback. Embed it
// and override the granular events you care about.
type BaseObserver struct {
	Changed func()
}

func (b *BaseObserver) OnChanged() {
	if b.Changed != nil {
		b.Changed()
	}
}

func (b *BaseObserver) OnRangeChanged(int, int, any) { b.OnChanged() }
func (b *BaseObserver) OnRangeInserted(int, int)     { b.OnChanged() }
func (b *BaseObserver) OnRangeRemoved(int, int)      { b.OnChanged() }
func (b *BaseObserver) OnMoved(int, int)             { b.OnChanged() }

// ObserverFuncs adapts closures to Observer. Nil fields are ignored. Register
// it by pointer so that it can be unregistered again.
type ObserverFuncs struct {
	Changed       func()
	RangeChanged  func(start, count int, payload any)
	RangeInserted func(start, count int)
	RangeRemoved  func(start, count int)
	Moved         func(from, to int)
}

func (f *ObserverFuncs) OnChanged() {
	if f.Changed != nil {
		f.Changed()
	}
}

func (f *ObserverFuncs) OnRangeChanged(start, count int, payload any) {
	if f.RangeChanged != nil {
		f.RangeChanged(start, count, payload)
	}
}

func (f *ObserverFuncs) OnRangeInserted(start, count int) {
	if f.RangeInserted != nil {
		f.RangeInserted(start, count)
	}
}

func (f *ObserverFuncs) OnRangeRemoved(start, count int) {
	if f.RangeRemoved != nil {
		f.RangeRemoved(start, count)
	}
}

func (f *ObserverFuncs) OnMoved(from, to int) {
	if f.Moved != nil {
		f.Moved(from, to)
	}
}

// Observable is the observer half of a Datasource. Embed it to get
// RegisterObserver, UnregisterObserver and the Notify helpers.
type Observable struct {
	observers observable.Registry[Observer]
}

// RegisterObserver adds o. Registering the same observer twice is a no-op.
func (s *Observable) RegisterObserver(o Observer) {
	if o == nil {
		return
	}
	s.observers.Register(o)
}

// UnregisterObserver removes o if present.
func (s *Observable) UnregisterObserver(o Observer) {
	if o == nil {
		return
	}
	s.observers.Unregister(o)
}

// ObserverCount returns the number of registered observers.
func (s *Observable) ObserverCount() int {
	return s.observers.Len()
}

// HasObservers reports whether anyone is listening.
func (s *Observable) HasObservers() bool {
	return s.observers.Len() > 0
}

func (s *Observable) NotifyChanged() {
	s.observers.Notify(func(o Observer) { o.OnChanged() })
}

func (s *Observable) NotifyRangeChanged(start, count int, payload any) {
	s.observers.Notify(func(o Observer) { o.OnRangeChanged(start, count, payload) })
}

func (s *Observable) NotifyRangeInserted(start, count int) {
	s.observers.Notify(func(o Observer) { o.OnRangeInserted(start, count) })
}

func (s *Observable) NotifyRangeRemoved(start, count int) {
	s.observers.Notify(func(o Observer) { o.OnRangeRemoved(start, count) })
}

func (s *Observable) NotifyMoved(from, to int) {
	s.observers.Notify(func(o Observer) { o.OnMoved(from, to) })
}
