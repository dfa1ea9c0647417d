package ui

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/five82/rowbind/internal/catalog"
	"github.com/five82/rowbind/internal/choice"
	"github.com/five82/rowbind/internal/config"
	"github.com/five82/rowbind/internal/datasource"
	"github.com/five82/rowbind/internal/lifecycle"
)

// controller owns the datasource proxy, the list renderer, the choice mode
// and the row behaviors bound to the list.
type controller struct {
	spec  choice.Spec
	proxy *datasource.Proxy[catalog.Item]
	list  *List
	bar   *actionBar
	mode  choice.Mode

	tracker *lifecycle.Tracker
	enabled *lifecycle.EnabledBehavior
	checked *lifecycle.ChoiceBehavior
	phases  *lifecycle.LifecycleBehavior

	revision uint64
	closed   bool
	// honorDisabled applies the catalog's disabled flags to rows.
	honorDisabled bool
}

func newController(cfg config.Config, height int) (*controller, error) {
	c := &controller{
		spec:          cfg.ChoiceMode,
		bar:           &actionBar{},
		honorDisabled: true,
	}
	c.proxy = datasource.NewProxy[catalog.Item](nil, datasource.WithDiff(datasource.ItemCallback[catalog.Item]{
		SameItem:      catalog.SameItem,
		SameContent:   catalog.SameContent,
		ChangePayload: catalog.ChangePayload,
	}, cfg.DetectMoves))
	c.list = NewList(c.proxy, height)
	c.mode = choice.New(cfg.ChoiceMode, c.bar, &choice.SessionFuncs{
		Prepare: c.prepareSession,
		Action:  c.sessionAction,
		Destroy: func(choice.Session) { glog.V(2).Info("[ui] action bar closed") },
	}, cfg.ModalOptions()...)

	c.tracker = lifecycle.NewTracker(c.list)
	c.enabled = lifecycle.NewEnabledBehavior(c.tracker, c.isEnabled)
	checked, err := lifecycle.NewChoiceBehavior(c.tracker, c.mode)
	if err != nil {
		c.list.Close()
		c.proxy.Close()
		return nil, fmt.Errorf("bind choice mode: %w", err)
	}
	c.checked = checked
	c.phases = lifecycle.NewLifecycleBehavior(c.tracker)
	c.tracker.Bind()
	c.phases.Start()
	return c, nil
}

// swap installs items as the new source when revision moved.
func (c *controller) swap(items []catalog.Item, revision uint64) bool {
	if revision == c.revision {
		return false
	}
	c.revision = revision
	if _, err := c.proxy.Swap(datasource.FromSlice(items)); err != nil {
		glog.Warningf("[ui] swap catalog: %v", err)
		return false
	}
	glog.V(2).Infof("[ui] catalog revision=%d items=%d strategy=%s", revision, len(items), c.proxy.LastStrategy())
	return true
}

func (c *controller) isEnabled(_ int64, position int) bool {
	if !c.honorDisabled {
		return true
	}
	item, err := c.proxy.Get(position)
	if err != nil {
		return true
	}
	return !item.Disabled
}

// toggleDisabledFilter flips whether disabled catalog items are greyed out.
func (c *controller) toggleDisabledFilter() bool {
	c.honorDisabled = !c.honorDisabled
	c.enabled.Refresh()
	return c.honorDisabled
}

// click forwards a tap on the cursor row. Disabled rows ignore input.
func (c *controller) click(long bool) bool {
	rv, ok := c.list.CursorRow()
	if !ok || !rv.enabled {
		return false
	}
	if long {
		return c.mode.OnLongClick(rv.item.ID)
	}
	return c.mode.OnClick(rv.item.ID)
}

// perform runs a session action. Modal modes route it through the session
// callbacks; plain modes act directly.
func (c *controller) perform(action string) bool {
	if m, ok := c.mode.(*choice.Modal); ok {
		return m.PerformAction(action)
	}
	return c.sessionAction(nil, action)
}

// finish closes an open action session.
func (c *controller) finish() bool {
	m, ok := c.mode.(*choice.Modal)
	if !ok || !m.IsActivated() {
		return false
	}
	m.Finish()
	return true
}

func (c *controller) prepareSession(choice.Session) bool {
	title := fmt.Sprintf("%d selected", c.mode.CheckedItemCount())
	if title == c.bar.Title() {
		return false
	}
	c.bar.SetTitle(title)
	return true
}

func (c *controller) sessionAction(_ choice.Session, action string) bool {
	switch action {
	case actionClear:
		c.mode.ClearChoices()
		return true
	case actionCheckAll:
		if c.spec.Kind != choice.KindMultiple || !c.mode.IsActivated() {
			return false
		}
		for i := 0; i < c.proxy.Size(); i++ {
			item, err := c.proxy.Get(i)
			if err != nil || !c.isEnabled(item.ID, i) {
				continue
			}
			c.mode.SetItemChecked(item.ID, true)
		}
		return true
	}
	return false
}

// restore adopts a saved selection. Modal modes reopen their session when
// anything was checked.
func (c *controller) restore(st choice.State) {
	c.mode.Restore(st)
}

// close saves the selection, winds the rows down and releases the list.
func (c *controller) close() choice.State {
	st := c.mode.Save()
	if c.closed {
		return st
	}
	c.closed = true
	c.phases.Stop()
	c.tracker.Unbind()
	c.checked.Close()
	c.enabled.Close()
	c.phases.Close()
	c.list.Close()
	c.proxy.Close()
	return st
}
