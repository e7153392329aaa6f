package ring

import (
	"fmt"
	"iter"
	"slices"
)

// SelectRing is a FocusRing with at most one selected element. Focus and
// selection are independent: navigation never changes the selection, and
// selecting never moves the focus. Selecting an element replaces any
// previous selection, so two elements can never be selected at once.
// SelectRing is an immutable value type like FocusRing.
//
// The zero value is an empty ring with nothing selected.
type SelectRing[T any] struct {
	ring FocusRing[T]
	// sel is the selected index plus one; 0 means nothing is selected.
	// The offset keeps the zero value unselected.
	sel int
}

// NewSelectRing creates a ring holding items in order, focused on the
// first item, with nothing selected.
func NewSelectRing[T any](items ...T) SelectRing[T] {
	return SelectRing[T]{ring: NewFocusRing(items...)}
}

// SelectAt returns a ring with the element at index i selected, replacing
// any previous selection. The index wraps. Returns the ring unchanged if
// empty.
func (r SelectRing[T]) SelectAt(i int) SelectRing[T] {
	if r.ring.IsEmpty() {
		return r
	}
	return SelectRing[T]{ring: r.ring, sel: normalize(i, r.ring.Len()) + 1}
}

// SelectFirst returns a ring with the first element selected.
func (r SelectRing[T]) SelectFirst() SelectRing[T] {
	return r.SelectAt(0)
}

// SelectLast returns a ring with the last element selected.
func (r SelectRing[T]) SelectLast() SelectRing[T] {
	return r.SelectAt(r.ring.Len() - 1)
}

// SelectFocused returns a ring with the focused element selected.
func (r SelectRing[T]) SelectFocused() SelectRing[T] {
	return r.SelectAt(r.ring.FocusedIndex())
}

// SelectFirstFunc returns a ring with the first element satisfying match
// selected, or the ring unchanged if none does.
func (r SelectRing[T]) SelectFirstFunc(match func(T) bool) SelectRing[T] {
	if idx := slices.IndexFunc(r.ring.elems, match); idx >= 0 {
		return r.SelectAt(idx)
	}
	return r
}

// ClearSelected returns a ring with nothing selected.
func (r SelectRing[T]) ClearSelected() SelectRing[T] {
	return SelectRing[T]{ring: r.ring}
}

// DeselectAt returns a ring with the selection cleared if index i is the
// selected index, unchanged otherwise. The index wraps.
func (r SelectRing[T]) DeselectAt(i int) SelectRing[T] {
	if r.IsSelectedAt(i) {
		return r.ClearSelected()
	}
	return r
}

// DeselectFirst returns a ring with the selection cleared if the first
// element is selected.
func (r SelectRing[T]) DeselectFirst() SelectRing[T] {
	return r.DeselectAt(0)
}

// DeselectLast returns a ring with the selection cleared if the last
// element is selected.
func (r SelectRing[T]) DeselectLast() SelectRing[T] {
	return r.DeselectAt(r.ring.Len() - 1)
}

// DeselectFocused returns a ring with the selection cleared if the
// focused element is selected.
func (r SelectRing[T]) DeselectFocused() SelectRing[T] {
	return r.DeselectAt(r.ring.FocusedIndex())
}

// DeselectFunc returns a ring with the selection cleared if the selected
// element satisfies match, unchanged otherwise.
func (r SelectRing[T]) DeselectFunc(match func(T) bool) SelectRing[T] {
	if r.SelectedMatches(match) {
		return r.ClearSelected()
	}
	return r
}

// ToggleAt returns a ring with the selection at index i toggled: cleared
// if i is the selected index, moved to i otherwise. The index wraps.
// Returns the ring unchanged if empty.
func (r SelectRing[T]) ToggleAt(i int) SelectRing[T] {
	if r.IsSelectedAt(i) {
		return r.ClearSelected()
	}
	return r.SelectAt(i)
}

// ToggleFirst returns a ring with the selection toggled at the first
// element.
func (r SelectRing[T]) ToggleFirst() SelectRing[T] {
	return r.ToggleAt(0)
}

// ToggleLast returns a ring with the selection toggled at the last
// element.
func (r SelectRing[T]) ToggleLast() SelectRing[T] {
	return r.ToggleAt(r.ring.Len() - 1)
}

// ToggleFocused returns a ring with the selection toggled at the focused
// element.
func (r SelectRing[T]) ToggleFocused() SelectRing[T] {
	return r.ToggleAt(r.ring.FocusedIndex())
}

// IsNoneSelected reports whether nothing is selected.
func (r SelectRing[T]) IsNoneSelected() bool {
	return r.sel == 0
}

// IsAnySelected reports whether an element is selected.
func (r SelectRing[T]) IsAnySelected() bool {
	return r.sel != 0
}

// IsSelectedAt reports whether index i is the selected index. The index
// wraps; an empty ring reports false.
func (r SelectRing[T]) IsSelectedAt(i int) bool {
	idx, ok := r.SelectedIndex()
	return ok && normalize(i, r.ring.Len()) == idx
}

// IsFocusedSelected reports whether the focused element is selected.
func (r SelectRing[T]) IsFocusedSelected() bool {
	return r.IsSelectedAt(r.ring.FocusedIndex())
}

// SelectedMatches reports whether an element is selected and satisfies
// match.
func (r SelectRing[T]) SelectedMatches(match func(T) bool) bool {
	item, ok := r.Selected()
	return ok && match(item)
}

// Selected returns the selected element. The second return is false if
// nothing is selected.
func (r SelectRing[T]) Selected() (T, bool) {
	idx, ok := r.SelectedIndex()
	if !ok {
		var zero T
		return zero, false
	}
	return r.ring.At(idx)
}

// SelectedIndex returns the index of the selected element. The second
// return is false if nothing is selected.
func (r SelectRing[T]) SelectedIndex() (int, bool) {
	if r.sel == 0 {
		return 0, false
	}
	return r.sel - 1, true
}

// SetSelected returns a ring with the selected element replaced by item.
// Returns the ring unchanged if nothing is selected.
func (r SelectRing[T]) SetSelected(item T) SelectRing[T] {
	idx, ok := r.SelectedIndex()
	if !ok {
		return r
	}
	return SelectRing[T]{ring: r.ring.Set(idx, item), sel: r.sel}
}

// Push returns a ring with item added after the last element.
func (r SelectRing[T]) Push(item T) SelectRing[T] {
	return r.Append(item)
}

// Append returns a ring with items added after the last element,
// preserving their order. Focus and selection are unchanged.
func (r SelectRing[T]) Append(items ...T) SelectRing[T] {
	return SelectRing[T]{ring: r.ring.Append(items...), sel: r.sel}
}

// Prepend returns a ring with items added before the first element,
// preserving their order. Focus and selection shift with the elements,
// so the same elements stay focused and selected.
func (r SelectRing[T]) Prepend(items ...T) SelectRing[T] {
	sel := r.sel
	if sel != 0 {
		sel += len(items)
	}
	return SelectRing[T]{ring: r.ring.Prepend(items...), sel: sel}
}

// RemoveAt returns a ring with the element at index i removed. The index
// wraps. Removing the selected element clears the selection; a selection
// above the removed index shifts down with its element. Focus follows
// the FocusRing removal rule. Returns the ring unchanged if empty.
func (r SelectRing[T]) RemoveAt(i int) SelectRing[T] {
	n := r.ring.Len()
	if n == 0 {
		return r
	}
	idx := normalize(i, n)
	sel := r.sel
	switch {
	case sel == 0:
	case sel-1 == idx:
		sel = 0
	case sel-1 > idx:
		sel--
	}
	return SelectRing[T]{ring: r.ring.RemoveAt(idx), sel: sel}
}

// RemoveFirst returns a ring with the first element removed.
func (r SelectRing[T]) RemoveFirst() SelectRing[T] {
	return r.RemoveAt(0)
}

// RemoveLast returns a ring with the last element removed.
func (r SelectRing[T]) RemoveLast() SelectRing[T] {
	return r.RemoveAt(r.ring.Len() - 1)
}

// RemoveFocused returns a ring with the focused element removed.
func (r SelectRing[T]) RemoveFocused() SelectRing[T] {
	return r.RemoveAt(r.ring.FocusedIndex())
}

// RemoveSelected returns a ring with the selected element removed and the
// selection cleared. Returns the ring unchanged if nothing is selected.
func (r SelectRing[T]) RemoveSelected() SelectRing[T] {
	idx, ok := r.SelectedIndex()
	if !ok {
		return r
	}
	return r.RemoveAt(idx)
}

// FocusOn returns a ring focused on index i. The index wraps.
func (r SelectRing[T]) FocusOn(i int) SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusOn(i), sel: r.sel}
}

// FocusNext returns a ring focused one step forward, wrapping from the
// last element to the first.
func (r SelectRing[T]) FocusNext() SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusNext(), sel: r.sel}
}

// FocusPrev returns a ring focused one step backward, wrapping from the
// first element to the last.
func (r SelectRing[T]) FocusPrev() SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusPrev(), sel: r.sel}
}

// FocusFirst returns a ring focused on the first element.
func (r SelectRing[T]) FocusFirst() SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusFirst(), sel: r.sel}
}

// FocusLast returns a ring focused on the last element.
func (r SelectRing[T]) FocusLast() SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusLast(), sel: r.sel}
}

// FocusFirstFunc returns a ring focused on the first element satisfying
// match, or the ring unchanged if none does.
func (r SelectRing[T]) FocusFirstFunc(match func(T) bool) SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusFirstFunc(match), sel: r.sel}
}

// FocusLastFunc returns a ring focused on the last element satisfying
// match, or the ring unchanged if none does.
func (r SelectRing[T]) FocusLastFunc(match func(T) bool) SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusLastFunc(match), sel: r.sel}
}

// FocusNextFunc returns a ring focused on the next element satisfying
// match. See FocusRing.FocusNextFunc for the scan order.
func (r SelectRing[T]) FocusNextFunc(match func(T) bool) SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusNextFunc(match), sel: r.sel}
}

// FocusPrevFunc returns a ring focused on the previous element satisfying
// match. See FocusRing.FocusPrevFunc for the scan order.
func (r SelectRing[T]) FocusPrevFunc(match func(T) bool) SelectRing[T] {
	return SelectRing[T]{ring: r.ring.FocusPrevFunc(match), sel: r.sel}
}

// At returns the element at index i. The index wraps; the second return
// is false if the ring is empty.
func (r SelectRing[T]) At(i int) (T, bool) {
	return r.ring.At(i)
}

// First returns the first element. The second return is false if the
// ring is empty.
func (r SelectRing[T]) First() (T, bool) {
	return r.ring.First()
}

// Last returns the last element. The second return is false if the ring
// is empty.
func (r SelectRing[T]) Last() (T, bool) {
	return r.ring.Last()
}

// Focused returns the focused element. The second return is false if the
// ring is empty.
func (r SelectRing[T]) Focused() (T, bool) {
	return r.ring.Focused()
}

// FocusedIndex returns the index of the focused element, 0 if the ring
// is empty.
func (r SelectRing[T]) FocusedIndex() int {
	return r.ring.FocusedIndex()
}

// Set returns a ring with the element at index i replaced by item. The
// index wraps. Returns the ring unchanged if empty.
func (r SelectRing[T]) Set(i int, item T) SelectRing[T] {
	return SelectRing[T]{ring: r.ring.Set(i, item), sel: r.sel}
}

// SetFocused returns a ring with the focused element replaced by item.
// Returns the ring unchanged if empty.
func (r SelectRing[T]) SetFocused(item T) SelectRing[T] {
	return SelectRing[T]{ring: r.ring.SetFocused(item), sel: r.sel}
}

// IsEmpty reports whether the ring has no elements.
func (r SelectRing[T]) IsEmpty() bool {
	return r.ring.IsEmpty()
}

// Len returns the number of elements.
func (r SelectRing[T]) Len() int {
	return r.ring.Len()
}

// IsFocusedAt reports whether index i is the focused index. The index
// wraps; an empty ring reports false.
func (r SelectRing[T]) IsFocusedAt(i int) bool {
	return r.ring.IsFocusedAt(i)
}

// FocusedMatches reports whether the focused element satisfies match.
func (r SelectRing[T]) FocusedMatches(match func(T) bool) bool {
	return r.ring.FocusedMatches(match)
}

// ToSlice returns the elements in ring order. The returned slice is safe
// to modify without affecting the ring.
func (r SelectRing[T]) ToSlice() []T {
	return r.ring.ToSlice()
}

// All returns an iterator over index-element pairs in ring order,
// starting at index 0.
func (r SelectRing[T]) All() iter.Seq2[int, T] {
	return r.ring.All()
}

// String returns a compact description for debugging.
func (r SelectRing[T]) String() string {
	if idx, ok := r.SelectedIndex(); ok {
		return fmt.Sprintf("SelectRing(%v, focus=%d, selected=%d)", r.ring.elems, r.ring.focused, idx)
	}
	return fmt.Sprintf("SelectRing(%v, focus=%d, selected=none)", r.ring.elems, r.ring.focused)
}
