package choice

import (
	"golang.org/x/exp/slices"
)

// Multiple allows any number of checked items. Clicks toggle.
type Multiple struct {
	notifier
	checked map[int64]struct{}
}

// Ensure Multiple implements Mode at compile time.
var _ Mode = (*Multiple)(nil)

// NewMultiple returns a Multiple mode with nothing checked.
func NewMultiple() *Multiple {
	return &Multiple{checked: make(map[int64]struct{})}
}

func (m *Multiple) OnClick(id int64) bool {
	if id == NoID {
		return false
	}
	m.setChecked(id, !m.IsItemChecked(id), true)
	return true
}

func (m *Multiple) OnLongClick(int64) bool { return false }

func (m *Multiple) IsActivated() bool { return true }

func (m *Multiple) IsItemChecked(id int64) bool {
	if id == NoID {
		return false
	}
	_, ok := m.checked[id]
	return ok
}

func (m *Multiple) SetItemChecked(id int64, checked bool) {
	m.setChecked(id, checked, false)
}

func (m *Multiple) CheckedItemCount() int {
	return len(m.checked)
}

func (m *Multiple) CheckedItemIDs() []int64 {
	if len(m.checked) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(m.checked))
	for id := range m.checked {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ClearChoices empties the set with one aggregate notification.
func (m *Multiple) ClearChoices() {
	if len(m.checked) == 0 {
		return
	}
	m.checked = make(map[int64]struct{})
	m.notifyAll(false)
}

func (m *Multiple) RequiresStableIDs() bool { return true }

func (m *Multiple) Save() State {
	return State{Checked: m.CheckedItemIDs()}
}

func (m *Multiple) Restore(st State) {
	m.checked = make(map[int64]struct{}, len(st.Checked))
	for _, id := range st.Checked {
		if id != NoID {
			m.checked[id] = struct{}{}
		}
	}
	m.notifyAll(false)
}

func (m *Multiple) setChecked(id int64, checked, fromUser bool) {
	if id == NoID || m.IsItemChecked(id) == checked {
		return
	}
	if checked {
		m.checked[id] = struct{}{}
	} else {
		delete(m.checked, id)
	}
	m.notifyItem(id, checked, fromUser)
}
