package ui

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/five82/rowbind/internal/catalog"
	"github.com/five82/rowbind/internal/datasource"
	"github.com/five82/rowbind/internal/lifecycle"
)

func items(ids ...int64) []catalog.Item {
	out := make([]catalog.Item, len(ids))
	for i, id := range ids {
		out[i] = catalog.Item{ID: id, Title: fmt.Sprintf("item %d", id)}
	}
	return out
}

func visibleIDs(l *List) []int64 {
	var ids []int64
	for _, rv := range l.VisibleRows() {
		ids = append(ids, rv.item.ID)
	}
	return ids
}

// attachRecorder logs attach and detach signals with the identity and
// position the list reports at that moment.
type attachRecorder struct {
	l      *List
	events []string
}

func (r *attachRecorder) OnRowAttached(row lifecycle.Row) {
	r.events = append(r.events, fmt.Sprintf("attach:%d@%d", r.l.IdentityOf(row), r.l.PositionOf(row)))
}

func (r *attachRecorder) OnRowDetached(row lifecycle.Row) {
	r.events = append(r.events, fmt.Sprintf("detach:%d@%d", r.l.IdentityOf(row), r.l.PositionOf(row)))
}

func newRecordedList(t *testing.T, src datasource.Datasource[catalog.Item], height int) (*List, *attachRecorder) {
	t.Helper()
	l := NewList(src, height)
	rec := &attachRecorder{l: l}
	l.AddAttachListener(rec)
	return l, rec
}

func TestList_ScrollingRecyclesRows(t *testing.T) {
	src := datasource.FromSlice(items(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	l, rec := newRecordedList(t, src, 3)

	assert.Equal(t, visibleIDs(l), []int64{1, 2, 3})
	assert.Equal(t, l.RowsCreated(), 3)

	l.SetCursor(3)
	assert.Equal(t, l.Offset(), 1)
	assert.Equal(t, visibleIDs(l), []int64{2, 3, 4})
	assert.Equal(t, rec.events, []string{"detach:1@-1", "attach:4@3"})
	assert.Equal(t, l.RowsCreated(), 3)

	l.SetCursor(100)
	assert.Equal(t, l.Cursor(), 9)
	assert.Equal(t, visibleIDs(l), []int64{8, 9, 10})
	assert.Equal(t, l.RowsCreated(), 3)

	l.MoveCursor(-100)
	assert.Equal(t, l.Cursor(), 0)
	assert.Equal(t, l.Offset(), 0)
}

func TestList_InsertBeforeCursorFollowsItem(t *testing.T) {
	src := datasource.FromSlice(items(1, 2, 3, 4, 5))
	l, rec := newRecordedList(t, src, 3)
	l.SetCursor(1)

	if err := src.Insert(0, items(100)...); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	// Nothing is bound until the next frame.
	assert.Equal(t, len(rec.events), 0)

	l.Frame()
	assert.Equal(t, l.Cursor(), 2)
	row, ok := l.CursorRow()
	if !ok {
		t.Fatal("CursorRow() found no row")
	}
	assert.Equal(t, row.item.ID, int64(2))
	assert.Equal(t, visibleIDs(l), []int64{100, 1, 2})
	assert.Equal(t, rec.events, []string{"detach:3@-1", "attach:100@0"})
}

func TestList_RemoveDetachesImmediately(t *testing.T) {
	src := datasource.FromSlice(items(1, 2, 3, 4, 5))
	l, rec := newRecordedList(t, src, 3)

	if err := src.Remove(1, 1); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	assert.Equal(t, rec.events, []string{"detach:2@-1"})

	l.Frame()
	assert.Equal(t, visibleIDs(l), []int64{1, 3, 4})
	assert.Equal(t, rec.events, []string{"detach:2@-1", "attach:4@2"})
}

func TestList_MoveKeepsRowsBound(t *testing.T) {
	src := datasource.FromSlice(items(1, 2, 3, 4, 5))
	l, rec := newRecordedList(t, src, 5)

	if err := src.Move(0, 4); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	l.Frame()
	assert.Equal(t, visibleIDs(l), []int64{2, 3, 4, 5, 1})
	assert.Equal(t, len(rec.events), 0)
	// The cursor followed item 1.
	assert.Equal(t, l.Cursor(), 4)
}

func TestList_RangeChanged(t *testing.T) {
	src := datasource.FromSlice(items(1, 2, 3))
	l, rec := newRecordedList(t, src, 3)

	if err := src.SetWithPayload(1, catalog.Item{ID: 2, Title: "renamed"}, "title"); err != nil {
		t.Fatalf("SetWithPayload() error = %v", err)
	}
	l.Frame()
	rows := l.VisibleRows()
	assert.Equal(t, rows[1].item.Title, "renamed")
	assert.Equal(t, rows[1].payload, "title")
	assert.Equal(t, rows[1].binds, 2)
	assert.Equal(t, len(rec.events), 0)

	// A different identity at the same position is a fresh attach.
	if err := src.Set(2, catalog.Item{ID: 99}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	l.Frame()
	assert.Equal(t, visibleIDs(l), []int64{1, 2, 99})
	assert.Equal(t, rec.events, []string{"detach:3@-1", "attach:99@2"})
}

func TestList_ReplaceRebindsEverything(t *testing.T) {
	src := datasource.FromSlice(items(1, 2, 3))
	l, rec := newRecordedList(t, src, 3)

	src.Replace(items(7))
	l.Frame()
	assert.Equal(t, visibleIDs(l), []int64{7})
	assert.Equal(t, len(rec.events), 4)
	assert.Equal(t, rec.events[3], "attach:7@0")
}

func TestList_RendererContract(t *testing.T) {
	src := datasource.FromSlice(items(1, 2))
	l := NewList(src, 2)
	other := NewList(datasource.FromSlice(items(1)), 1)

	row, ok := l.FindRowForIdentity(2)
	if !ok {
		t.Fatal("FindRowForIdentity(2) found no row")
	}
	assert.Equal(t, l.PositionOf(row), 1)
	assert.Equal(t, l.IdentityOf(row), int64(2))
	assert.Equal(t, len(l.DisplayedRows()), 2)
	assert.Equal(t, l.HasStableIDs(), true)

	if _, ok := l.FindRowForIdentity(3); ok {
		t.Fatal("FindRowForIdentity(3) found a row")
	}
	foreign, _ := other.FindRowForIdentity(1)
	assert.Equal(t, l.PositionOf(foreign), lifecycle.NoPosition)
	assert.Equal(t, l.PositionOf("not a row"), lifecycle.NoPosition)
}

func TestList_ProxySwapsMatchSource(t *testing.T) {
	proxy := datasource.NewProxy[catalog.Item](nil, datasource.WithDiff(datasource.ItemCallback[catalog.Item]{
		SameItem:      catalog.SameItem,
		SameContent:   catalog.SameContent,
		ChangePayload: catalog.ChangePayload,
	}, true))
	l := NewList(proxy, 4)
	tr := lifecycle.NewTracker(l)
	tr.Bind()

	rng := rand.New(rand.NewSource(7))
	for step := 0; step < 300; step++ {
		var next []catalog.Item
		for _, id := range rng.Perm(10)[:rng.Intn(11)] {
			next = append(next, catalog.Item{ID: int64(id), Title: fmt.Sprintf("t%d", rng.Intn(2))})
		}
		if _, err := proxy.Swap(datasource.FromSlice(next)); err != nil {
			t.Fatalf("Swap() error = %v", err)
		}
		if rng.Intn(3) == 0 {
			l.MoveCursor(rng.Intn(7) - 3)
		}
		l.Frame()

		rows := l.VisibleRows()
		want := min(l.Height(), len(next)-l.Offset())
		if len(rows) != want {
			t.Fatalf("step %d: %d rows bound, want %d", step, len(rows), want)
		}
		for i, rv := range rows {
			pos := l.Offset() + i
			if rv.pos != pos || rv.item != next[pos] {
				t.Fatalf("step %d: row %d = %+v@%d, want %+v@%d", step, i, rv.item, rv.pos, next[pos], pos)
			}
		}
		if len(tr.ActiveRows()) != len(rows) {
			t.Fatalf("step %d: tracker has %d rows, list %d", step, len(tr.ActiveRows()), len(rows))
		}
	}
	if l.RowsCreated() > l.Height()+1 {
		t.Fatalf("RowsCreated() = %d, want pool bounded by the window", l.RowsCreated())
	}
}

func TestMovedPosition(t *testing.T) {
	tests := []struct {
		pos, from, to, want int
	}{
		{0, 0, 3, 3},
		{1, 0, 3, 0},
		{3, 0, 3, 2},
		{4, 0, 3, 4},
		{3, 3, 0, 0},
		{0, 3, 0, 1},
		{2, 3, 0, 3},
	}
	for _, tt := range tests {
		if got := movedPosition(tt.pos, tt.from, tt.to); got != tt.want {
			t.Fatalf("movedPosition(%d, %d, %d) = %d, want %d", tt.pos, tt.from, tt.to, got, tt.want)
		}
	}
}
