package lifecycle

// NoPosition is returned by Renderer.PositionOf for a row that is no longer
// bound to a datasource position, typically because it is about to be
// detached.
const NoPosition = -1

// Row is a visual row handed out by a Renderer. Rows must be comparable;
// renderers normally use pointers.
type Row = any

// AttachListener receives viewport attach and detach signals.
type AttachListener interface {
	OnRowAttached(row Row)
	OnRowDetached(row Row)
}

// ReboundListener is an optional extension of AttachListener. Renderers
// call OnRowRebound when an attached row is rebound in place to new content
// for the same identity at the same position.
type ReboundListener interface {
	OnRowRebound(row Row)
}

// PreRenderHook is invoked once per frame before the renderer draws.
type PreRenderHook interface {
	OnPreRender()
}

// Renderer is the virtualized list that owns and recycles rows.
type Renderer interface {
	AddAttachListener(l AttachListener)
	RemoveAttachListener(l AttachListener)
	AddPreRenderHook(h PreRenderHook)
	RemovePreRenderHook(h PreRenderHook)

	// FindRowForIdentity returns the displayed row bound to id, if any.
	FindRowForIdentity(id int64) (Row, bool)
	// DisplayedRows returns the rows currently attached to the viewport.
	DisplayedRows() []Row
	// PositionOf returns the datasource position of row, or NoPosition.
	PositionOf(row Row) int
	// IdentityOf returns the stable identity bound to row.
	IdentityOf(row Row) int64
	HasStableIDs() bool
}
