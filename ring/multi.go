package ring

import (
	"fmt"
	"iter"
)

// MultiSelectRing is a FocusRing with an independently selected set of
// elements. Any subset may be selected at once: selecting an already
// selected element is a no-op and toggling twice restores the original
// selection. MultiSelectRing is an immutable value type like FocusRing.
//
// The zero value is an empty ring with nothing selected.
type MultiSelectRing[T any] struct {
	ring     FocusRing[T]
	selected indexSet
}

// NewMultiSelectRing creates a ring holding items in order, focused on
// the first item, with nothing selected.
func NewMultiSelectRing[T any](items ...T) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: NewFocusRing(items...)}
}

// SelectAt returns a ring with the element at index i added to the
// selection. The index wraps. Returns the ring unchanged if empty or if
// the index is already selected.
func (r MultiSelectRing[T]) SelectAt(i int) MultiSelectRing[T] {
	if r.ring.IsEmpty() {
		return r
	}
	idx := normalize(i, r.ring.Len())
	if r.selected.has(idx) {
		return r
	}
	selected := r.selected.clone()
	selected[idx] = struct{}{}
	return MultiSelectRing[T]{ring: r.ring, selected: selected}
}

// SelectFirst returns a ring with the first element added to the
// selection.
func (r MultiSelectRing[T]) SelectFirst() MultiSelectRing[T] {
	return r.SelectAt(0)
}

// SelectLast returns a ring with the last element added to the
// selection.
func (r MultiSelectRing[T]) SelectLast() MultiSelectRing[T] {
	return r.SelectAt(r.ring.Len() - 1)
}

// SelectFocused returns a ring with the focused element added to the
// selection.
func (r MultiSelectRing[T]) SelectFocused() MultiSelectRing[T] {
	return r.SelectAt(r.ring.FocusedIndex())
}

// SelectAll returns a ring with every element selected.
func (r MultiSelectRing[T]) SelectAll() MultiSelectRing[T] {
	return r.SelectManyFunc(func(T) bool { return true })
}

// SelectMany returns a ring with each given index added to the
// selection. Indexes wrap. Returns the ring unchanged if empty.
func (r MultiSelectRing[T]) SelectMany(indexes ...int) MultiSelectRing[T] {
	if r.ring.IsEmpty() || len(indexes) == 0 {
		return r
	}
	selected := r.selected.clone()
	for _, i := range indexes {
		selected[normalize(i, r.ring.Len())] = struct{}{}
	}
	return MultiSelectRing[T]{ring: r.ring, selected: selected}
}

// SelectManyFunc returns a ring with every element satisfying match added
// to the selection.
func (r MultiSelectRing[T]) SelectManyFunc(match func(T) bool) MultiSelectRing[T] {
	if r.ring.IsEmpty() {
		return r
	}
	selected := r.selected.clone()
	for i, item := range r.ring.elems {
		if match(item) {
			selected[i] = struct{}{}
		}
	}
	return MultiSelectRing[T]{ring: r.ring, selected: selected}
}

// DeselectAt returns a ring with the element at index i removed from the
// selection. The index wraps. Returns the ring unchanged if the index is
// not selected.
func (r MultiSelectRing[T]) DeselectAt(i int) MultiSelectRing[T] {
	if r.ring.IsEmpty() {
		return r
	}
	idx := normalize(i, r.ring.Len())
	if !r.selected.has(idx) {
		return r
	}
	selected := r.selected.clone()
	delete(selected, idx)
	return MultiSelectRing[T]{ring: r.ring, selected: selected}
}

// DeselectFirst returns a ring with the first element removed from the
// selection.
func (r MultiSelectRing[T]) DeselectFirst() MultiSelectRing[T] {
	return r.DeselectAt(0)
}

// DeselectLast returns a ring with the last element removed from the
// selection.
func (r MultiSelectRing[T]) DeselectLast() MultiSelectRing[T] {
	return r.DeselectAt(r.ring.Len() - 1)
}

// DeselectFocused returns a ring with the focused element removed from
// the selection.
func (r MultiSelectRing[T]) DeselectFocused() MultiSelectRing[T] {
	return r.DeselectAt(r.ring.FocusedIndex())
}

// DeselectAll returns a ring with nothing selected.
func (r MultiSelectRing[T]) DeselectAll() MultiSelectRing[T] {
	if len(r.selected) == 0 {
		return r
	}
	return MultiSelectRing[T]{ring: r.ring}
}

// DeselectMany returns a ring with each given index removed from the
// selection. Indexes wrap.
func (r MultiSelectRing[T]) DeselectMany(indexes ...int) MultiSelectRing[T] {
	if r.ring.IsEmpty() || len(indexes) == 0 || len(r.selected) == 0 {
		return r
	}
	selected := r.selected.clone()
	for _, i := range indexes {
		delete(selected, normalize(i, r.ring.Len()))
	}
	return MultiSelectRing[T]{ring: r.ring, selected: selected}
}

// DeselectManyFunc returns a ring with every selected element satisfying
// match removed from the selection.
func (r MultiSelectRing[T]) DeselectManyFunc(match func(T) bool) MultiSelectRing[T] {
	if len(r.selected) == 0 {
		return r
	}
	selected := r.selected.clone()
	for i := range r.selected {
		if match(r.ring.elems[i]) {
			delete(selected, i)
		}
	}
	return MultiSelectRing[T]{ring: r.ring, selected: selected}
}

// ToggleAt returns a ring with the selection at index i toggled:
// deselected if selected, selected if not. The index wraps. Returns the
// ring unchanged if empty.
func (r MultiSelectRing[T]) ToggleAt(i int) MultiSelectRing[T] {
	if r.IsSelectedAt(i) {
		return r.DeselectAt(i)
	}
	return r.SelectAt(i)
}

// ToggleFirst returns a ring with the selection toggled at the first
// element.
func (r MultiSelectRing[T]) ToggleFirst() MultiSelectRing[T] {
	return r.ToggleAt(0)
}

// ToggleLast returns a ring with the selection toggled at the last
// element.
func (r MultiSelectRing[T]) ToggleLast() MultiSelectRing[T] {
	return r.ToggleAt(r.ring.Len() - 1)
}

// ToggleFocused returns a ring with the selection toggled at the focused
// element.
func (r MultiSelectRing[T]) ToggleFocused() MultiSelectRing[T] {
	return r.ToggleAt(r.ring.FocusedIndex())
}

// IsNoneSelected reports whether nothing is selected.
func (r MultiSelectRing[T]) IsNoneSelected() bool {
	return len(r.selected) == 0
}

// IsAnySelected reports whether at least one element is selected.
func (r MultiSelectRing[T]) IsAnySelected() bool {
	return len(r.selected) > 0
}

// IsAllSelected reports whether the selected count equals the element
// count. An empty ring reports true.
func (r MultiSelectRing[T]) IsAllSelected() bool {
	return len(r.selected) == r.ring.Len()
}

// IsSelectedAt reports whether the element at index i is selected. The
// index wraps; an empty ring reports false.
func (r MultiSelectRing[T]) IsSelectedAt(i int) bool {
	if r.ring.IsEmpty() {
		return false
	}
	return r.selected.has(normalize(i, r.ring.Len()))
}

// IsFocusedSelected reports whether the focused element is selected.
func (r MultiSelectRing[T]) IsFocusedSelected() bool {
	return r.IsSelectedAt(r.ring.FocusedIndex())
}

// SelectedMatches reports whether any selected element satisfies match.
func (r MultiSelectRing[T]) SelectedMatches(match func(T) bool) bool {
	for i := range r.selected {
		if match(r.ring.elems[i]) {
			return true
		}
	}
	return false
}

// CountSelected returns the number of selected elements.
func (r MultiSelectRing[T]) CountSelected() int {
	return len(r.selected)
}

// CountDeselected returns the number of unselected elements.
func (r MultiSelectRing[T]) CountDeselected() int {
	return r.ring.Len() - len(r.selected)
}

// Selected returns the selected elements in ascending index order. The
// returned slice is safe to modify without affecting the ring.
func (r MultiSelectRing[T]) Selected() []T {
	indexes := r.selected.sorted()
	if len(indexes) == 0 {
		return nil
	}
	items := make([]T, len(indexes))
	for i, idx := range indexes {
		items[i] = r.ring.elems[idx]
	}
	return items
}

// SelectedIndexes returns the selected indexes in ascending order. The
// returned slice is safe to modify without affecting the ring.
func (r MultiSelectRing[T]) SelectedIndexes() []int {
	return r.selected.sorted()
}

// Push returns a ring with item added after the last element.
func (r MultiSelectRing[T]) Push(item T) MultiSelectRing[T] {
	return r.Append(item)
}

// Append returns a ring with items added after the last element,
// preserving their order. Focus and selection are unchanged.
func (r MultiSelectRing[T]) Append(items ...T) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.Append(items...), selected: r.selected}
}

// Prepend returns a ring with items added before the first element,
// preserving their order. Focus and the selected set shift with the
// elements, so the same elements stay focused and selected.
func (r MultiSelectRing[T]) Prepend(items ...T) MultiSelectRing[T] {
	if len(items) == 0 {
		return r
	}
	return MultiSelectRing[T]{
		ring:     r.ring.Prepend(items...),
		selected: r.selected.shifted(len(items)),
	}
}

// RemoveAt returns a ring with the element at index i removed. The index
// wraps. The removed element leaves the selection; selected indexes above
// it shift down with their elements. Focus follows the FocusRing removal
// rule. Returns the ring unchanged if empty.
func (r MultiSelectRing[T]) RemoveAt(i int) MultiSelectRing[T] {
	n := r.ring.Len()
	if n == 0 {
		return r
	}
	idx := normalize(i, n)
	return MultiSelectRing[T]{
		ring:     r.ring.RemoveAt(idx),
		selected: r.selected.reindexed(idx),
	}
}

// RemoveFirst returns a ring with the first element removed.
func (r MultiSelectRing[T]) RemoveFirst() MultiSelectRing[T] {
	return r.RemoveAt(0)
}

// RemoveLast returns a ring with the last element removed.
func (r MultiSelectRing[T]) RemoveLast() MultiSelectRing[T] {
	return r.RemoveAt(r.ring.Len() - 1)
}

// RemoveFocused returns a ring with the focused element removed.
func (r MultiSelectRing[T]) RemoveFocused() MultiSelectRing[T] {
	return r.RemoveAt(r.ring.FocusedIndex())
}

// FocusOn returns a ring focused on index i. The index wraps.
func (r MultiSelectRing[T]) FocusOn(i int) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusOn(i), selected: r.selected}
}

// FocusNext returns a ring focused one step forward, wrapping from the
// last element to the first.
func (r MultiSelectRing[T]) FocusNext() MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusNext(), selected: r.selected}
}

// FocusPrev returns a ring focused one step backward, wrapping from the
// first element to the last.
func (r MultiSelectRing[T]) FocusPrev() MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusPrev(), selected: r.selected}
}

// FocusFirst returns a ring focused on the first element.
func (r MultiSelectRing[T]) FocusFirst() MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusFirst(), selected: r.selected}
}

// FocusLast returns a ring focused on the last element.
func (r MultiSelectRing[T]) FocusLast() MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusLast(), selected: r.selected}
}

// FocusFirstFunc returns a ring focused on the first element satisfying
// match, or the ring unchanged if none does.
func (r MultiSelectRing[T]) FocusFirstFunc(match func(T) bool) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusFirstFunc(match), selected: r.selected}
}

// FocusLastFunc returns a ring focused on the last element satisfying
// match, or the ring unchanged if none does.
func (r MultiSelectRing[T]) FocusLastFunc(match func(T) bool) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusLastFunc(match), selected: r.selected}
}

// FocusNextFunc returns a ring focused on the next element satisfying
// match. See FocusRing.FocusNextFunc for the scan order.
func (r MultiSelectRing[T]) FocusNextFunc(match func(T) bool) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusNextFunc(match), selected: r.selected}
}

// FocusPrevFunc returns a ring focused on the previous element satisfying
// match. See FocusRing.FocusPrevFunc for the scan order.
func (r MultiSelectRing[T]) FocusPrevFunc(match func(T) bool) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.FocusPrevFunc(match), selected: r.selected}
}

// At returns the element at index i. The index wraps; the second return
// is false if the ring is empty.
func (r MultiSelectRing[T]) At(i int) (T, bool) {
	return r.ring.At(i)
}

// First returns the first element. The second return is false if the
// ring is empty.
func (r MultiSelectRing[T]) First() (T, bool) {
	return r.ring.First()
}

// Last returns the last element. The second return is false if the ring
// is empty.
func (r MultiSelectRing[T]) Last() (T, bool) {
	return r.ring.Last()
}

// Focused returns the focused element. The second return is false if the
// ring is empty.
func (r MultiSelectRing[T]) Focused() (T, bool) {
	return r.ring.Focused()
}

// FocusedIndex returns the index of the focused element, 0 if the ring
// is empty.
func (r MultiSelectRing[T]) FocusedIndex() int {
	return r.ring.FocusedIndex()
}

// Set returns a ring with the element at index i replaced by item. The
// index wraps. Returns the ring unchanged if empty.
func (r MultiSelectRing[T]) Set(i int, item T) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.Set(i, item), selected: r.selected}
}

// SetFocused returns a ring with the focused element replaced by item.
// Returns the ring unchanged if empty.
func (r MultiSelectRing[T]) SetFocused(item T) MultiSelectRing[T] {
	return MultiSelectRing[T]{ring: r.ring.SetFocused(item), selected: r.selected}
}

// IsEmpty reports whether the ring has no elements.
func (r MultiSelectRing[T]) IsEmpty() bool {
	return r.ring.IsEmpty()
}

// Len returns the number of elements.
func (r MultiSelectRing[T]) Len() int {
	return r.ring.Len()
}

// IsFocusedAt reports whether index i is the focused index. The index
// wraps; an empty ring reports false.
func (r MultiSelectRing[T]) IsFocusedAt(i int) bool {
	return r.ring.IsFocusedAt(i)
}

// FocusedMatches reports whether the focused element satisfies match.
func (r MultiSelectRing[T]) FocusedMatches(match func(T) bool) bool {
	return r.ring.FocusedMatches(match)
}

// ToSlice returns the elements in ring order. The returned slice is safe
// to modify without affecting the ring.
func (r MultiSelectRing[T]) ToSlice() []T {
	return r.ring.ToSlice()
}

// All returns an iterator over index-element pairs in ring order,
// starting at index 0.
func (r MultiSelectRing[T]) All() iter.Seq2[int, T] {
	return r.ring.All()
}

// String returns a compact description for debugging.
func (r MultiSelectRing[T]) String() string {
	return fmt.Sprintf("MultiSelectRing(%v, focus=%d, selected=%v)",
		r.ring.elems, r.ring.focused, r.selected.sorted())
}
