// Package observable provides the ordered observer set shared by datasources,
// choice modes and the row lifecycle tracker.
package observable

import (
	"golang.org/x/exp/slices"
)

// Registry is an ordered set of observers keyed by identity.
//
// Notify walks observers newest first so that layers registered later (closer
// to the UI) react before the layers they decorate. NotifyForward walks them in
// registration order.
//
// Registering or unregistering from inside a notification is allowed. Each pass
// iterates a snapshot taken when it starts: observers added during the pass are
// first notified by the next pass, and observers removed during the pass are
// skipped if they have not been reached yet.
//
// A Registry is not safe for concurrent use; it is meant to be owned by a single
// UI goroutine.
type Registry[T comparable] struct {
	observers []T
	depth     int
}

// Register adds o. It reports false if o was already registered.
func (r *Registry[T]) Register(o T) bool {
	if slices.Index(r.observers, o) >= 0 {
		return false
	}
	if r.depth > 0 {
		// A pass holds the current backing array; do not append into it.
		r.observers = slices.Clip(r.observers)
	}
	r.observers = append(r.observers, o)
	return true
}

// Unregister removes o. It reports false if o was not registered.
func (r *Registry[T]) Unregister(o T) bool {
	i := slices.Index(r.observers, o)
	if i < 0 {
		return false
	}
	if r.depth > 0 {
		next := make([]T, 0, len(r.observers)-1)
		next = append(next, r.observers[:i]...)
		r.observers = append(next, r.observers[i+1:]...)
		return true
	}
	r.observers = slices.Delete(r.observers, i, i+1)
	return true
}

// Contains reports whether o is registered.
func (r *Registry[T]) Contains(o T) bool {
	return slices.Index(r.observers, o) >= 0
}

// Len returns the number of registered observers.
func (r *Registry[T]) Len() int {
	return len(r.observers)
}

// Clear removes every observer.
func (r *Registry[T]) Clear() {
	r.observers = nil
}

// Snapshot returns the observers in registration order.
func (r *Registry[T]) Snapshot() []T {
	return slices.Clone(r.observers)
}

// Notify calls fn for every observer, most recently registered first.
func (r *Registry[T]) Notify(fn func(T)) {
	snapshot := r.observers
	if len(snapshot) == 0 {
		return
	}
	r.depth++
	defer func() { r.depth-- }()

	for i := len(snapshot) - 1; i >= 0; i-- {
		o := snapshot[i]
		if !r.live(snapshot, o) {
			continue
		}
		fn(o)
	}
}

// NotifyForward calls fn for every observer in registration order.
func (r *Registry[T]) NotifyForward(fn func(T)) {
	snapshot := r.observers
	if len(snapshot) == 0 {
		return
	}
	r.depth++
	defer func() { r.depth-- }()

	for _, o := range snapshot {
		if !r.live(snapshot, o) {
			continue
		}
		fn(o)
	}
}

// live reports whether o is still registered. The common case, no mutation
// since the pass started, avoids the lookup.
func (r *Registry[T]) live(snapshot []T, o T) bool {
	if len(r.observers) == len(snapshot) && (len(snapshot) == 0 || &r.observers[0] == &snapshot[0]) {
		return true
	}
	return r.Contains(o)
}
