package datasource

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestList_GetOutOfRange(t *testing.T) {
	l := FromSlice([]string{"a"})

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"equal to size", 1},
		{"past size", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Get(tt.index)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Get(%d) error = %v, want ErrOutOfRange", tt.index, err)
			}
			var rerr *RangeError
			if !errors.As(err, &rerr) || rerr.Index != tt.index || rerr.Size != 1 {
				t.Fatalf("Get(%d) error = %#v, want RangeError{Index: %d, Size: 1}", tt.index, err, tt.index)
			}
		})
	}
}

func TestList_MutationsEmitEvents(t *testing.T) {
	l := Empty[string]()
	rec := &recorder{}
	l.RegisterObserver(rec)

	l.Add("a", "b", "c")
	assert.Equal(t, l.Insert(1, "x"), nil)
	assert.Equal(t, l.Set(0, "A"), nil)
	assert.Equal(t, l.SetWithPayload(0, "AA", "p"), nil)
	assert.Equal(t, l.Move(3, 0), nil)
	assert.Equal(t, l.Remove(1, 2), nil)
	l.Replace([]string{"z"})

	want := []string{
		"inserted(0,3)",
		"inserted(1,1)",
		"range-changed(0,1,<nil>)",
		"range-changed(0,1,p)",
		"moved(3,0)",
		"removed(1,2)",
		"changed",
	}
	assert.Equal(t, rec.events, want)
	assert.Equal(t, l.Items(), []string{"z"})
}

func TestList_MoveKeepsOrder(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c", "d"})

	assert.Equal(t, l.Move(0, 2), nil)
	assert.Equal(t, l.Items(), []string{"b", "c", "a", "d"})

	assert.Equal(t, l.Move(3, 1), nil)
	assert.Equal(t, l.Items(), []string{"b", "d", "c", "a"})
}

func TestList_InvalidMutations(t *testing.T) {
	l := FromSlice([]string{"a", "b"})
	rec := &recorder{}
	l.RegisterObserver(rec)

	if err := l.Insert(3, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Insert(3) error = %v, want ErrOutOfRange", err)
	}
	if err := l.Remove(1, 2); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Remove(1, 2) error = %v, want ErrOutOfRange", err)
	}
	if err := l.Move(0, 2); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Move(0, 2) error = %v, want ErrOutOfRange", err)
	}
	if err := l.Set(-1, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Set(-1) error = %v, want ErrOutOfRange", err)
	}
	assert.Equal(t, len(rec.events), 0)
	assert.Equal(t, l.Items(), []string{"a", "b"})
}

func TestBaseObserver_RoutesToChanged(t *testing.T) {
	calls := 0
	o := &BaseObserver{Changed: func() { calls++ }}
	l := FromSlice([]int{1, 2})
	l.RegisterObserver(o)

	l.Add(3)
	assert.Equal(t, l.Remove(0, 1), nil)
	assert.Equal(t, l.Move(0, 1), nil)
	assert.Equal(t, l.Set(0, 9), nil)
	assert.Equal(t, calls, 4)
}
