package datasource

// List is a mutable, slice-backed Datasource. Every mutation emits the
// matching structural event before returning.
type List[E any] struct {
	Observable
	items []E
}

// Ensure List implements Datasource at compile time.
var _ Datasource[int] = (*List[int])(nil)

// FromSlice returns a List holding a copy of items.
func FromSlice[E any](items []E) *List[E] {
	l := &List[E]{}
	if len(items) > 0 {
		l.items = make([]E, len(items))
		copy(l.items, items)
	}
	return l
}

// Empty returns a List with no items.
func Empty[E any]() *List[E] {
	return &List[E]{}
}

// Get returns the item at index.
func (l *List[E]) Get(index int) (E, error) {
	if err := checkIndex("List.Get", index, len(l.items)); err != nil {
		var zero E
		return zero, err
	}
	return l.items[index], nil
}

// Size returns the number of items.
func (l *List[E]) Size() int {
	return len(l.items)
}

// Items returns a copy of the current items.
func (l *List[E]) Items() []E {
	out := make([]E, len(l.items))
	copy(out, l.items)
	return out
}

// Add appends items.
func (l *List[E]) Add(items ...E) {
	if len(items) == 0 {
		return
	}
	start := len(l.items)
	l.items = append(l.items, items...)
	l.NotifyRangeInserted(start, len(items))
}

// Insert inserts items before index. index may equal Size().
func (l *List[E]) Insert(index int, items ...E) error {
	if err := checkIndex("List.Insert", index, len(l.items)+1); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	next := make([]E, 0, len(l.items)+len(items))
	next = append(next, l.items[:index]...)
	next = append(next, items...)
	l.items = append(next, l.items[index:]...)
	l.NotifyRangeInserted(index, len(items))
	return nil
}

// Set replaces the item at index.
func (l *List[E]) Set(index int, item E) error {
	return l.SetWithPayload(index, item, nil)
}

// SetWithPayload replaces the item at index and forwards payload to
// observers for partial rebinds.
func (l *List[E]) SetWithPayload(index int, item E, payload any) error {
	if err := checkIndex("List.Set", index, len(l.items)); err != nil {
		return err
	}
	l.items[index] = item
	l.NotifyRangeChanged(index, 1, payload)
	return nil
}

// Remove removes count items starting at index.
func (l *List[E]) Remove(index, count int) error {
	if count <= 0 {
		return nil
	}
	if err := checkIndex("List.Remove", index, len(l.items)); err != nil {
		return err
	}
	if err := checkIndex("List.Remove", index+count-1, len(l.items)); err != nil {
		return err
	}
	l.items = append(l.items[:index], l.items[index+count:]...)
	l.NotifyRangeRemoved(index, count)
	return nil
}

// Move moves the item at from so that it ends up at to.
func (l *List[E]) Move(from, to int) error {
	if err := checkIndex("List.Move", from, len(l.items)); err != nil {
		return err
	}
	if err := checkIndex("List.Move", to, len(l.items)); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	v := l.items[from]
	if from < to {
		copy(l.items[from:to], l.items[from+1:to+1])
	} else {
		copy(l.items[to+1:from+1], l.items[to:from])
	}
	l.items[to] = v
	l.NotifyMoved(from, to)
	return nil
}

// Replace swaps the whole content and emits a single OnChanged. Use a Proxy
// with a diff when observers need granular events.
func (l *List[E]) Replace(items []E) {
	l.items = make([]E, len(items))
	copy(l.items, items)
	l.NotifyChanged()
}
