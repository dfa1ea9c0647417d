// Package choice tracks which list items are checked, by stable identity
// rather than position, so that selection survives datasource swaps and row
// recycling.
//
// Variants:
//
//   - None: no selection at all
//   - Single: at most one checked item; clicking it again is a no-op
//   - Multiple: any number of items; clicks toggle; ClearChoices fires one
//     aggregate notification
//   - Modal (Single or Multiple): selection lives inside an action session
//     that opens on the first check and, with finish-on-clear, closes when
//     the last item is unchecked
//
// All calls and notifications are synchronous. State and its binary form
// carry the checked identities across a host teardown.
package choice
