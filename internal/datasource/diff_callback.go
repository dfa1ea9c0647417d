package datasource

import (
	"github.com/golang/glog"

	"github.com/five82/rowbind/internal/diff"
)

// ItemCallback holds the predicates a Proxy uses to diff two sources.
type ItemCallback[E any] struct {
	// SameItem reports whether a and b are the same logical item. Required.
	SameItem func(a, b E) bool
	// SameContent reports whether a and b render identically. Nil means
	// items that are the same are never considered changed.
	SameContent func(a, b E) bool
	// ChangePayload returns an optional payload for a partial rebind.
	ChangePayload func(a, b E) any
}

// NewItemDiffFactory returns a DiffFactory comparing items with cb.
func NewItemDiffFactory[E any](cb ItemCallback[E]) DiffFactory[E] {
	return func(old, next Datasource[E]) diff.Callback {
		return &itemDiffCallback[E]{
			cb:   cb,
			old:  snapshot(old),
			next: snapshot(next),
		}
	}
}

type itemDiffCallback[E any] struct {
	cb   ItemCallback[E]
	old  []E
	next []E
}

func (c *itemDiffCallback[E]) OldSize() int { return len(c.old) }
func (c *itemDiffCallback[E]) NewSize() int { return len(c.next) }

func (c *itemDiffCallback[E]) SameItem(oldIndex, newIndex int) bool {
	return c.cb.SameItem(c.old[oldIndex], c.next[newIndex])
}

func (c *itemDiffCallback[E]) SameContent(oldIndex, newIndex int) bool {
	if c.cb.SameContent == nil {
		return true
	}
	return c.cb.SameContent(c.old[oldIndex], c.next[newIndex])
}

func (c *itemDiffCallback[E]) ChangePayload(oldIndex, newIndex int) any {
	if c.cb.ChangePayload == nil {
		return nil
	}
	return c.cb.ChangePayload(c.old[oldIndex], c.next[newIndex])
}

// snapshot reads every item of ds once. A source whose Get fails within its
// own Size is truncated at the failing index.
func snapshot[E any](ds Datasource[E]) []E {
	size := ds.Size()
	out := make([]E, 0, size)
	for i := 0; i < size; i++ {
		item, err := ds.Get(i)
		if err != nil {
			glog.Warningf("[proxy] snapshot truncated at %d/%d: %v", i, size, err)
			break
		}
		out = append(out, item)
	}
	return out
}
