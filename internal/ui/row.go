package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/rowbind/internal/catalog"
	"github.com/five82/rowbind/internal/lifecycle"
)

// rowView is a recyclable list row. Behaviors paint its checked and enabled
// state; the lifecycle behavior drives its phase.
type rowView struct {
	list *List
	pos  int
	item catalog.Item

	checked bool
	enabled bool
	phase   lifecycle.Phase
	frame   int

	// stale marks a pending rebind; payload names the field that changed.
	stale   bool
	payload any
	binds   int
}

// Ensure rowView carries every optional row capability at compile time.
var (
	_ lifecycle.Checkable      = (*rowView)(nil)
	_ lifecycle.Enableable     = (*rowView)(nil)
	_ lifecycle.LifecycleAware = (*rowView)(nil)
)

func newRowView(l *List) *rowView {
	return &rowView{list: l, pos: lifecycle.NoPosition, enabled: true}
}

func (r *rowView) SetChecked(checked bool) { r.checked = checked }
func (r *rowView) SetEnabled(enabled bool) { r.enabled = enabled }

func (r *rowView) OnStart()  { r.phase = lifecycle.PhaseStarted }
func (r *rowView) OnResume() { r.phase = lifecycle.PhaseResumed }
func (r *rowView) OnPause()  { r.phase = lifecycle.PhaseStarted }
func (r *rowView) OnStop()   { r.phase = lifecycle.PhaseStopped }

func (r *rowView) bind(item catalog.Item) {
	r.item = item
	r.stale = false
	r.payload = nil
	r.binds++
}

// rebind refreshes the item in place, keeping the change payload for render.
func (r *rowView) rebind(item catalog.Item) {
	payload := r.payload
	r.bind(item)
	r.payload = payload
}

func (r *rowView) reset() {
	r.item = catalog.Item{}
	r.checked = false
	r.enabled = true
	r.phase = lifecycle.PhaseStopped
	r.frame = 0
	r.stale = false
	r.payload = nil
}

// rowRenderOptions carry the list-wide state a row needs to draw itself.
type rowRenderOptions struct {
	width      int
	cursor     bool
	checkboxes bool
}

// render draws the row on a single line of the given width.
func (r *rowView) render(styles Styles, opts rowRenderOptions) string {
	var b strings.Builder

	if opts.cursor {
		b.WriteString("› ")
	} else {
		b.WriteString("  ")
	}
	if opts.checkboxes {
		if r.checked {
			b.WriteString(styles.Checked.Render("[x]"))
		} else {
			b.WriteString(styles.MutedText.Render("[ ]"))
		}
		b.WriteString(" ")
	}

	label := r.item.StatusLabel()
	title := truncate(r.item.DisplayTitle(), opts.width-rowChromeWidth-len(label))
	switch {
	case !r.enabled:
		title = styles.Disabled.Render(title)
	case r.checked:
		title = styles.Checked.Render(title)
	default:
		title = styles.Text.Render(title)
	}
	b.WriteString(title)

	if field, ok := r.payload.(string); ok && field != "" {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf(" (%s)", field)))
	}

	chip := styles.StatusStyle(label).Render(label)
	if label == "running" && r.phase == lifecycle.PhaseResumed {
		chip = styles.AccentText.Render(spinnerFrames[r.frame%len(spinnerFrames)]) + " " + chip
	}

	left := b.String()
	gap := opts.width - lipgloss.Width(left) - lipgloss.Width(chip)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + chip
	if opts.cursor {
		return styles.Cursor.Width(opts.width).Render(line)
	}
	return line
}
