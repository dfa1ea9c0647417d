// Package datasource provides the indexed collections a virtualized list binds
// to, and the proxy that swaps them.
//
// # Overview
//
// A Datasource is a read-only view (Get, Size) plus an observer registry for
// structural events: changed, range changed (with an optional payload),
// range inserted, range removed and moved. Observers are notified newest
// first; see package observable.
//
// # Components
//
//   - datasource.go: Datasource and Observer contracts, Observable helper
//   - list.go: List, a mutable slice-backed datasource
//   - proxy.go: Proxy, the single owner of the active datasource
//   - diff_callback.go: ItemCallback predicates and the diff factory
//   - errors.go: ErrOutOfRange, ErrNilSource and RangeError
//
// # Swapping
//
// Proxy.Swap replaces the active source and emits exactly one of:
//
//   - RangeInserted(0, newSize) when the old source was empty
//   - the diff engine's edit script when a diff factory is configured
//   - RangeChanged(0, newSize, nil) otherwise
//
// The previous source is handed back to the caller; the proxy neither keeps
// nor closes it.
//
//	proxy := datasource.NewProxy[Item](nil, datasource.WithDiff(datasource.ItemCallback[Item]{
//		SameItem:    func(a, b Item) bool { return a.ID == b.ID },
//		SameContent: func(a, b Item) bool { return a == b },
//	}, true))
//	proxy.RegisterObserver(renderer)
//	old, err := proxy.Swap(datasource.FromSlice(items))
package datasource
