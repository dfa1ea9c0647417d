package choice

// Single allows at most one checked item.
//
// Clicking the checked item again is a no-op. Checking a different item
// moves the selection and fires a single notification for the newly checked
// item; observers re-query IsItemChecked for the previously checked row.
type Single struct {
	notifier
	checked int64
}

// Ensure Single implements Mode at compile time.
var _ Mode = (*Single)(nil)

// NewSingle returns a Single mode with nothing checked.
func NewSingle() *Single {
	return &Single{checked: NoID}
}

func (s *Single) OnClick(id int64) bool {
	if id == NoID {
		return false
	}
	s.setChecked(id, true, true)
	return true
}

func (s *Single) OnLongClick(int64) bool { return false }

func (s *Single) IsActivated() bool { return true }

func (s *Single) IsItemChecked(id int64) bool {
	return id != NoID && s.checked == id
}

func (s *Single) SetItemChecked(id int64, checked bool) {
	s.setChecked(id, checked, false)
}

// CheckedItemID returns the checked identity, or NoID.
func (s *Single) CheckedItemID() int64 {
	return s.checked
}

func (s *Single) CheckedItemCount() int {
	if s.checked == NoID {
		return 0
	}
	return 1
}

func (s *Single) CheckedItemIDs() []int64 {
	if s.checked == NoID {
		return nil
	}
	return []int64{s.checked}
}

func (s *Single) ClearChoices() {
	if s.checked == NoID {
		return
	}
	prev := s.checked
	s.checked = NoID
	s.notifyItem(prev, false, false)
}

func (s *Single) RequiresStableIDs() bool { return true }

func (s *Single) Save() State {
	return State{Checked: s.CheckedItemIDs()}
}

// Restore adopts the first identity of st, if any.
func (s *Single) Restore(st State) {
	s.checked = NoID
	for _, id := range st.Checked {
		if id != NoID {
			s.checked = id
			break
		}
	}
	s.notifyAll(false)
}

func (s *Single) setChecked(id int64, checked, fromUser bool) {
	if id == NoID {
		return
	}
	if checked {
		if s.checked == id {
			return
		}
		s.checked = id
		s.notifyItem(id, true, fromUser)
		return
	}
	if s.checked != id {
		return
	}
	s.checked = NoID
	s.notifyItem(id, false, fromUser)
}
