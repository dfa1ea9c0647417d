package observable

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

type probe struct {
	name string
}

func TestRegistry_RegisterIsSetLike(t *testing.T) {
	var r Registry[*probe]
	a := &probe{name: "a"}

	assert.Equal(t, r.Register(a), true)
	assert.Equal(t, r.Register(a), false)
	assert.Equal(t, r.Len(), 1)

	assert.Equal(t, r.Unregister(a), true)
	assert.Equal(t, r.Unregister(a), false)
	assert.Equal(t, r.Len(), 0)
}

func TestRegistry_NotifyReverseOrder(t *testing.T) {
	var r Registry[*probe]
	for _, name := range []string{"o1", "o2", "o3", "o4"} {
		r.Register(&probe{name: name})
	}

	var got []string
	r.Notify(func(p *probe) { got = append(got, p.name) })
	assert.Equal(t, got, []string{"o4", "o3", "o2", "o1"})

	got = nil
	r.NotifyForward(func(p *probe) { got = append(got, p.name) })
	assert.Equal(t, got, []string{"o1", "o2", "o3", "o4"})
}

func TestRegistry_UnregisterDuringNotify(t *testing.T) {
	var r Registry[*probe]
	a, b, c := &probe{name: "a"}, &probe{name: "b"}, &probe{name: "c"}
	r.Register(a)
	r.Register(b)
	r.Register(c)

	var got []string
	r.Notify(func(p *probe) {
		got = append(got, p.name)
		if p == c {
			// b has not been reached yet and must be skipped.
			r.Unregister(b)
		}
	})
	assert.Equal(t, got, []string{"c", "a"})
	assert.Equal(t, r.Snapshot(), []*probe{a, c})
}

func TestRegistry_UnregisterSelfDuringNotify(t *testing.T) {
	var r Registry[*probe]
	a, b := &probe{name: "a"}, &probe{name: "b"}
	r.Register(a)
	r.Register(b)

	var got []string
	r.Notify(func(p *probe) {
		got = append(got, p.name)
		r.Unregister(p)
	})
	assert.Equal(t, got, []string{"b", "a"})
	assert.Equal(t, r.Len(), 0)
}

func TestRegistry_RegisterDuringNotifyDefersToNextPass(t *testing.T) {
	var r Registry[*probe]
	a := &probe{name: "a"}
	late := &probe{name: "late"}
	r.Register(a)

	var got []string
	r.NotifyForward(func(p *probe) {
		got = append(got, p.name)
		r.Register(late)
	})
	assert.Equal(t, got, []string{"a"})

	got = nil
	r.Notify(func(p *probe) { got = append(got, p.name) })
	assert.Equal(t, got, []string{"late", "a"})
}

func TestRegistry_NestedNotify(t *testing.T) {
	var r Registry[*probe]
	a, b := &probe{name: "a"}, &probe{name: "b"}
	r.Register(a)
	r.Register(b)

	calls := 0
	r.Notify(func(p *probe) {
		calls++
		if p == b {
			r.Notify(func(*probe) { calls++ })
			r.Unregister(a)
		}
	})
	// outer b, inner b and a, outer a skipped
	assert.Equal(t, calls, 3)
}

func TestRegistry_ClearDuringNotify(t *testing.T) {
	var r Registry[*probe]
	r.Register(&probe{name: "a"})
	r.Register(&probe{name: "b"})

	calls := 0
	r.Notify(func(*probe) {
		calls++
		r.Clear()
	})
	assert.Equal(t, calls, 1)
	assert.Equal(t, r.Len(), 0)
}
