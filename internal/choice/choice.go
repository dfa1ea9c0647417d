package choice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/rowbind/internal/observable"
)

// NoID is the identity of "no item". Every predicate against it is false.
const NoID int64 = -1

var (
	// ErrStableIDsRequired is wrapped by the ConfigError returned when a
	// mode that tracks identities is bound to a list without stable ids.
	ErrStableIDsRequired = errors.New("choice mode requires stable item ids")

	// ErrUnknownMode is returned by ParseSpec for an unrecognized name.
	ErrUnknownMode = errors.New("unknown choice mode")
)

// ConfigError reports a setup-time precondition violation.
type ConfigError struct {
	// Op is the operation that detected the problem (e.g., "lifecycle.NewChoiceBehavior").
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Observer is notified when checked state changes. fromUser distinguishes
// clicks from programmatic changes.
type Observer interface {
	OnItemCheckedStateChanged(id int64, checked bool, fromUser bool)
	// OnAllItemsCheckedStateChanged replaces per-item notifications for bulk
	// changes such as ClearChoices or Restore.
	OnAllItemsCheckedStateChanged(fromUser bool)
}

// ObserverFuncs adapts closures to Observer. Register it by pointer.
type ObserverFuncs struct {
	ItemChanged func(id int64, checked bool, fromUser bool)
	AllChanged  func(fromUser bool)
}

func (f *ObserverFuncs) OnItemCheckedStateChanged(id int64, checked bool, fromUser bool) {
	if f.ItemChanged != nil {
		f.ItemChanged(id, checked, fromUser)
	}
}

func (f *ObserverFuncs) OnAllItemsCheckedStateChanged(fromUser bool) {
	if f.AllChanged != nil {
		f.AllChanged(fromUser)
	}
}

// Mode is a selection policy keyed by stable item identity.
type Mode interface {
	// OnClick handles a tap on the item and reports whether it was consumed.
	OnClick(id int64) bool
	// OnLongClick handles a long press and reports whether it was consumed.
	OnLongClick(id int64) bool
	// IsActivated reports whether the mode currently accepts selection.
	IsActivated() bool
	IsItemChecked(id int64) bool
	SetItemChecked(id int64, checked bool)
	CheckedItemCount() int
	// CheckedItemIDs returns the checked identities in ascending order.
	CheckedItemIDs() []int64
	ClearChoices()
	RegisterObserver(o Observer)
	UnregisterObserver(o Observer)
	// RequiresStableIDs reports whether the bound list must supply stable ids.
	RequiresStableIDs() bool
	Save() State
	Restore(s State)
}

// StableIDProvider is implemented by renderers that can report whether their
// item ids are stable.
type StableIDProvider interface {
	HasStableIDs() bool
}

// CheckStableIDs fails when mode needs stable ids and p cannot supply them.
func CheckStableIDs(op string, mode Mode, p StableIDProvider) error {
	if mode == nil || !mode.RequiresStableIDs() {
		return nil
	}
	if p == nil || !p.HasStableIDs() {
		return &ConfigError{Op: op, Err: ErrStableIDsRequired}
	}
	return nil
}

// notifier is the observer half shared by the concrete modes.
type notifier struct {
	observers observable.Registry[Observer]
}

func (n *notifier) RegisterObserver(o Observer) {
	if o != nil {
		n.observers.Register(o)
	}
}

func (n *notifier) UnregisterObserver(o Observer) {
	if o != nil {
		n.observers.Unregister(o)
	}
}

func (n *notifier) notifyItem(id int64, checked, fromUser bool) {
	n.observers.Notify(func(o Observer) { o.OnItemCheckedStateChanged(id, checked, fromUser) })
}

func (n *notifier) notifyAll(fromUser bool) {
	n.observers.Notify(func(o Observer) { o.OnAllItemsCheckedStateChanged(fromUser) })
}

// Kind is the selection capacity of a mode.
type Kind uint8

const (
	KindNone Kind = iota
	KindSingle
	KindMultiple
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMultiple:
		return "multiple"
	default:
		return "none"
	}
}

// Spec names a mode variant, as written in configuration files.
type Spec struct {
	Kind  Kind
	Modal bool
}

func (s Spec) String() string {
	if s.Modal && s.Kind != KindNone {
		return s.Kind.String() + "-modal"
	}
	return s.Kind.String()
}

// ParseSpec parses "none", "single", "multiple", "single-modal" or
// "multiple-modal".
func ParseSpec(name string) (Spec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return Spec{Kind: KindNone}, nil
	case "single":
		return Spec{Kind: KindSingle}, nil
	case "multiple":
		return Spec{Kind: KindMultiple}, nil
	case "single-modal":
		return Spec{Kind: KindSingle, Modal: true}, nil
	case "multiple-modal":
		return Spec{Kind: KindMultiple, Modal: true}, nil
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// New builds the mode described by spec. starter and callbacks are only used
// by modal variants and may be nil.
func New(spec Spec, starter ActionSessionStarter, callbacks SessionCallbacks, opts ...ModalOption) Mode {
	switch spec.Kind {
	case KindSingle:
		if spec.Modal {
			return NewSingleModal(starter, callbacks, opts...)
		}
		return NewSingle()
	case KindMultiple:
		if spec.Modal {
			return NewMultipleModal(starter, callbacks, opts...)
		}
		return NewMultiple()
	default:
		return None{}
	}
}
