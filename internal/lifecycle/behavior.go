package lifecycle

import "github.com/five82/rowbind/internal/observable"

// Behavior reacts to the lifecycle of displayed rows.
type Behavior interface {
	OnAttached(row Row)
	OnPositionChanged(row Row)
	OnDetached(row Row)
}

// ReboundBehavior is implemented by behaviors that repaint a row whose
// content was replaced in place.
type ReboundBehavior interface {
	OnRebound(row Row)
}

// Composite fans row events out to an ordered set of behaviors. Attach and
// position changes run in registration order; detach runs in reverse so
// teardown mirrors setup.
type Composite struct {
	behaviors observable.Registry[Behavior]
}

// Ensure Composite implements Behavior at compile time.
var _ Behavior = (*Composite)(nil)

// Add appends b. It reports false if b is nil or already present.
func (c *Composite) Add(b Behavior) bool {
	if b == nil {
		return false
	}
	return c.behaviors.Register(b)
}

// Remove drops b and reports whether it was present.
func (c *Composite) Remove(b Behavior) bool {
	if b == nil {
		return false
	}
	return c.behaviors.Unregister(b)
}

// Len returns the number of behaviors.
func (c *Composite) Len() int { return c.behaviors.Len() }

func (c *Composite) OnAttached(row Row) {
	c.behaviors.NotifyForward(func(b Behavior) { b.OnAttached(row) })
}

func (c *Composite) OnPositionChanged(row Row) {
	c.behaviors.NotifyForward(func(b Behavior) { b.OnPositionChanged(row) })
}

func (c *Composite) OnDetached(row Row) {
	c.behaviors.Notify(func(b Behavior) { b.OnDetached(row) })
}

// OnRebound forwards to the behaviors that implement ReboundBehavior, in
// registration order.
func (c *Composite) OnRebound(row Row) {
	c.behaviors.NotifyForward(func(b Behavior) {
		if rb, ok := b.(ReboundBehavior); ok {
			rb.OnRebound(row)
		}
	})
}

// BehaviorFuncs adapts closures to Behavior. Nil fields are ignored.
type BehaviorFuncs struct {
	Attached        func(row Row)
	PositionChanged func(row Row)
	Detached        func(row Row)
	Rebound         func(row Row)
}

func (f *BehaviorFuncs) OnAttached(row Row) {
	if f.Attached != nil {
		f.Attached(row)
	}
}

func (f *BehaviorFuncs) OnPositionChanged(row Row) {
	if f.PositionChanged != nil {
		f.PositionChanged(row)
	}
}

func (f *BehaviorFuncs) OnDetached(row Row) {
	if f.Detached != nil {
		f.Detached(row)
	}
}

func (f *BehaviorFuncs) OnRebound(row Row) {
	if f.Rebound != nil {
		f.Rebound(row)
	}
}
