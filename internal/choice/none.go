package choice

// None is the mode of lists without selection. Every call is a no-op.
type None struct{}

// Ensure None implements Mode at compile time.
var _ Mode = None{}

func (None) OnClick(int64) bool          { return false }
func (None) OnLongClick(int64) bool      { return false }
func (None) IsActivated() bool           { return false }
func (None) IsItemChecked(int64) bool    { return false }
func (None) SetItemChecked(int64, bool)  {}
func (None) CheckedItemCount() int       { return 0 }
func (None) CheckedItemIDs() []int64     { return nil }
func (None) ClearChoices()               {}
func (None) RegisterObserver(Observer)   {}
func (None) UnregisterObserver(Observer) {}
func (None) RequiresStableIDs() bool     { return false }
func (None) Save() State                 { return State{} }
func (None) Restore(State)               {}
