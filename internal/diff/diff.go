// Package diff computes the edit script between two indexed collections.
//
// Items are compared through a Callback: identity first (SameItem), then
// content (SameContent) for pairs that are the same item. The longest common
// subsequence of identities is found with Myers' algorithm. When move detection
// is enabled, a removed item and an inserted item with the same identity are
// reported as a single move.
//
// The resulting operations are ordered so that replaying them one by one on a
// mirror of the old collection reproduces the new collection exactly:
//
//  1. removals, highest position first
//  2. inserts and moves, lowest target position first
//  3. content changes, at their final positions
//
// Inserted positions are always indexes into the new collection at the moment
// they are applied, so a replaying consumer can take inserted values straight
// from the new side.
package diff

// Callback exposes the two collections being compared.
type Callback interface {
	OldSize() int
	NewSize() int
	// SameItem reports whether the two positions hold the same logical item.
	SameItem(oldIndex, newIndex int) bool
	// SameContent is only called when SameItem returned true.
	SameContent(oldIndex, newIndex int) bool
	// ChangePayload is only called when SameContent returned false. It may
	// return nil.
	ChangePayload(oldIndex, newIndex int) any
}

// Updater receives the edit script.
type Updater interface {
	Inserted(position, count int)
	Removed(position, count int)
	Moved(fromPosition, toPosition int)
	Changed(position, count int, payload any)
}

// OpKind identifies the type of an Op.
type OpKind uint8

const (
	// OpInsert inserts Count items at Position.
	OpInsert OpKind = iota
	// OpRemove removes Count items starting at Position.
	OpRemove
	// OpMove moves the item at Position to To.
	OpMove
	// OpChange marks Count items starting at Position as changed.
	OpChange
)

// String returns a human-readable representation of the op kind.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpMove:
		return "move"
	case OpChange:
		return "change"
	default:
		return "unknown"
	}
}

// Op is a single step of the edit script.
type Op struct {
	Kind     OpKind
	Position int
	Count    int
	// To is the target position of a move.
	To int
	// Payload is the optional change payload of an OpChange.
	Payload any
}

// Result is a computed edit script.
type Result struct {
	ops     []Op
	oldSize int
	newSize int
}

// Ops returns the edit script in dispatch order.
func (r *Result) Ops() []Op {
	if r == nil {
		return nil
	}
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// OldSize returns the size of the old collection.
func (r *Result) OldSize() int { return r.oldSize }

// NewSize returns the size of the new collection.
func (r *Result) NewSize() int { return r.newSize }

// HasChanges reports whether the script contains any operation.
func (r *Result) HasChanges() bool {
	return r != nil && len(r.ops) > 0
}

// DispatchUpdatesTo replays the script on u.
func (r *Result) DispatchUpdatesTo(u Updater) {
	if r == nil || u == nil {
		return
	}
	for _, op := range r.ops {
		switch op.Kind {
		case OpInsert:
			u.Inserted(op.Position, op.Count)
		case OpRemove:
			u.Removed(op.Position, op.Count)
		case OpMove:
			u.Moved(op.Position, op.To)
		case OpChange:
			u.Changed(op.Position, op.Count, op.Payload)
		}
	}
}

// Calculate computes the edit script that turns the old collection of cb into
// the new one.
func Calculate(cb Callback, detectMoves bool) *Result {
	n, m := cb.OldSize(), cb.NewSize()
	res := &Result{oldSize: n, newSize: m}

	// newToOld[j] is the old index matched to new index j, or -1 for an insert.
	newToOld := make([]int, m)
	for j := range newToOld {
		newToOld[j] = -1
	}
	oldMatched := make([]bool, n)

	for _, p := range matchSequence(cb, n, m) {
		newToOld[p.newIndex] = p.oldIndex
		oldMatched[p.oldIndex] = true
	}

	if detectMoves {
		matchMoves(cb, newToOld, oldMatched)
	}

	res.ops = buildScript(cb, newToOld, oldMatched)
	return res
}

type pair struct {
	oldIndex int
	newIndex int
}

// matchMoves pairs leftover removals with leftover inserts of the same item.
// Earlier old positions are preferred so that the pairing is deterministic.
func matchMoves(cb Callback, newToOld []int, oldMatched []bool) {
	var removed []int
	for i, ok := range oldMatched {
		if !ok {
			removed = append(removed, i)
		}
	}
	if len(removed) == 0 {
		return
	}
	for j, o := range newToOld {
		if o >= 0 {
			continue
		}
		for k, i := range removed {
			if i < 0 || !cb.SameItem(i, j) {
				continue
			}
			newToOld[j] = i
			oldMatched[i] = true
			removed[k] = -1
			break
		}
	}
}

// buildScript turns the old/new matching into ordered operations.
func buildScript(cb Callback, newToOld []int, oldMatched []bool) []Op {
	var ops []Op

	// Removals from the end so earlier positions stay valid.
	for i := len(oldMatched) - 1; i >= 0; {
		if oldMatched[i] {
			i--
			continue
		}
		end := i
		for i >= 0 && !oldMatched[i] {
			i--
		}
		ops = append(ops, Op{Kind: OpRemove, Position: i + 1, Count: end - i})
	}

	// cur mirrors the surviving old indexes in their current order.
	cur := make([]int, 0, len(newToOld))
	for i, ok := range oldMatched {
		if ok {
			cur = append(cur, i)
		}
	}

	for j := 0; j < len(newToOld); {
		o := newToOld[j]
		if o < 0 {
			start := j
			for j < len(newToOld) && newToOld[j] < 0 {
				j++
			}
			count := j - start
			ops = append(ops, Op{Kind: OpInsert, Position: start, Count: count})
			cur = insertPlaceholders(cur, start, count)
			continue
		}
		if p := indexFrom(cur, j, o); p != j {
			ops = append(ops, Op{Kind: OpMove, Position: p, To: j})
			cur = moveEntry(cur, p, j)
		}
		j++
	}

	// Content changes at their final positions, runs coalesced when they
	// carry no payload.
	for j := 0; j < len(newToOld); j++ {
		o := newToOld[j]
		if o < 0 || cb.SameContent(o, j) {
			continue
		}
		payload := cb.ChangePayload(o, j)
		if payload == nil && len(ops) > 0 {
			last := &ops[len(ops)-1]
			if last.Kind == OpChange && last.Payload == nil && last.Position+last.Count == j {
				last.Count++
				continue
			}
		}
		ops = append(ops, Op{Kind: OpChange, Position: j, Count: 1, Payload: payload})
	}
	return ops
}

func indexFrom(s []int, from, v int) int {
	for i := from; i < len(s); i++ {
		if s[i] == v {
			return i
		}
	}
	return -1
}

func insertPlaceholders(s []int, at, count int) []int {
	out := make([]int, 0, len(s)+count)
	out = append(out, s[:at]...)
	for k := 0; k < count; k++ {
		out = append(out, -1)
	}
	return append(out, s[at:]...)
}

func moveEntry(s []int, from, to int) []int {
	v := s[from]
	if from > to {
		copy(s[to+1:from+1], s[to:from])
	} else {
		copy(s[from:to], s[from+1:to+1])
	}
	s[to] = v
	return s
}
