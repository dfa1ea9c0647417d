package lifecycle

import (
	"reflect"
	"strings"
	"sync"
)

// Capability is a bit set of optional row interfaces.
type Capability uint8

const (
	CapCheckable Capability = 1 << iota
	CapEnableable
	CapLifecycleAware
)

// Checkable rows paint a checked state.
type Checkable interface {
	SetChecked(checked bool)
}

// Enableable rows paint an enabled state.
type Enableable interface {
	SetEnabled(enabled bool)
}

// LifecycleAware rows follow the host's start/resume/pause/stop signals.
type LifecycleAware interface {
	OnStart()
	OnResume()
	OnPause()
	OnStop()
}

// Has reports whether all bits of other are set.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(CapCheckable) {
		parts = append(parts, "checkable")
	}
	if c.Has(CapEnableable) {
		parts = append(parts, "enableable")
	}
	if c.Has(CapLifecycleAware) {
		parts = append(parts, "lifecycle")
	}
	return strings.Join(parts, "|")
}

// capabilities maps a row's dynamic type to its Capability bits. Trackers
// on different goroutines may share it.
var capabilities sync.Map

// CapabilitiesOf resolves the capabilities of row. The interface checks run
// once per dynamic type.
func CapabilitiesOf(row Row) Capability {
	if row == nil {
		return 0
	}
	typ := reflect.TypeOf(row)
	if c, ok := capabilities.Load(typ); ok {
		return c.(Capability)
	}
	var c Capability
	if _, ok := row.(Checkable); ok {
		c |= CapCheckable
	}
	if _, ok := row.(Enableable); ok {
		c |= CapEnableable
	}
	if _, ok := row.(LifecycleAware); ok {
		c |= CapLifecycleAware
	}
	capabilities.Store(typ, c)
	return c
}
