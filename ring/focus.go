package ring

import (
	"fmt"
	"iter"
	"slices"
)

// FocusRing is a circular collection with a single focused element.
// Navigation past either end wraps around, so the first and last elements
// are neighbors. FocusRing is an immutable value type: every operation
// returns a new ring and leaves the receiver untouched, so values can be
// stored and shared across updates without defensive copies.
//
// The zero value is an empty ring.
type FocusRing[T any] struct {
	elems   []T
	focused int
}

// NewFocusRing creates a ring holding items in order, focused on the
// first item. With no arguments it returns an empty ring.
func NewFocusRing[T any](items ...T) FocusRing[T] {
	return FocusRing[T]{elems: slices.Clone(items)}
}

// Push returns a ring with item added after the last element. The focused
// element is unchanged.
func (r FocusRing[T]) Push(item T) FocusRing[T] {
	return r.Append(item)
}

// Append returns a ring with items added after the last element,
// preserving their order. The focused element is unchanged.
func (r FocusRing[T]) Append(items ...T) FocusRing[T] {
	if len(items) == 0 {
		return r
	}
	elems := make([]T, 0, len(r.elems)+len(items))
	elems = append(elems, r.elems...)
	elems = append(elems, items...)
	return FocusRing[T]{elems: elems, focused: r.focused}
}

// Prepend returns a ring with items added before the first element,
// preserving their order. The focus index shifts by len(items) so the
// same element stays focused; prepending onto an empty ring focuses the
// first new element.
func (r FocusRing[T]) Prepend(items ...T) FocusRing[T] {
	if len(items) == 0 {
		return r
	}
	elems := make([]T, 0, len(r.elems)+len(items))
	elems = append(elems, items...)
	elems = append(elems, r.elems...)
	focused := 0
	if len(r.elems) > 0 {
		focused = r.focused + len(items)
	}
	return FocusRing[T]{elems: elems, focused: focused}
}

// RemoveAt returns a ring with the element at index i removed. The index
// wraps like all ring indexes. Removing the last index moves the focus
// back one step with wraparound; removing any other index keeps the
// numeric focus, clamped to the shortened ring. Keeping the numeric focus
// means removing an element before the focus shifts which element is
// focused; callers tracking an element across removals should re-focus by
// value afterward. Returns the ring unchanged if empty.
func (r FocusRing[T]) RemoveAt(i int) FocusRing[T] {
	n := len(r.elems)
	if n == 0 {
		return r
	}
	idx := normalize(i, n)
	elems := make([]T, 0, n-1)
	elems = append(elems, r.elems[:idx]...)
	elems = append(elems, r.elems[idx+1:]...)

	focused := r.focused
	if idx == n-1 {
		focused = normalize(focused-1, n-1)
	} else if focused > n-2 {
		focused = n - 2
	}
	return FocusRing[T]{elems: elems, focused: focused}
}

// RemoveFirst returns a ring with the first element removed.
func (r FocusRing[T]) RemoveFirst() FocusRing[T] {
	return r.RemoveAt(0)
}

// RemoveLast returns a ring with the last element removed.
func (r FocusRing[T]) RemoveLast() FocusRing[T] {
	return r.RemoveAt(len(r.elems) - 1)
}

// RemoveFocused returns a ring with the focused element removed.
func (r FocusRing[T]) RemoveFocused() FocusRing[T] {
	return r.RemoveAt(r.focused)
}

// FocusOn returns a ring focused on index i. The index wraps, so negative
// values count back from the last element. Returns the ring unchanged if
// empty.
func (r FocusRing[T]) FocusOn(i int) FocusRing[T] {
	if r.IsEmpty() {
		return r
	}
	return FocusRing[T]{elems: r.elems, focused: normalize(i, len(r.elems))}
}

// FocusNext returns a ring focused one step forward, wrapping from the
// last element to the first.
func (r FocusRing[T]) FocusNext() FocusRing[T] {
	return r.FocusOn(r.focused + 1)
}

// FocusPrev returns a ring focused one step backward, wrapping from the
// first element to the last.
func (r FocusRing[T]) FocusPrev() FocusRing[T] {
	return r.FocusOn(r.focused - 1)
}

// FocusFirst returns a ring focused on the first element.
func (r FocusRing[T]) FocusFirst() FocusRing[T] {
	return r.FocusOn(0)
}

// FocusLast returns a ring focused on the last element.
func (r FocusRing[T]) FocusLast() FocusRing[T] {
	return r.FocusOn(len(r.elems) - 1)
}

// FocusFirstFunc returns a ring focused on the first element satisfying
// match, or the ring unchanged if none does.
func (r FocusRing[T]) FocusFirstFunc(match func(T) bool) FocusRing[T] {
	if idx := slices.IndexFunc(r.elems, match); idx >= 0 {
		return r.FocusOn(idx)
	}
	return r
}

// FocusLastFunc returns a ring focused on the last element satisfying
// match, or the ring unchanged if none does.
func (r FocusRing[T]) FocusLastFunc(match func(T) bool) FocusRing[T] {
	if idx := lastIndexFunc(r.elems, match); idx >= 0 {
		return r.FocusOn(idx)
	}
	return r
}

// FocusNextFunc returns a ring focused on the next element satisfying
// match. The scan runs from the element after the focus to the last, then
// wraps to run from the first element up to and including the focused
// one. Returns the ring unchanged if no element matches.
func (r FocusRing[T]) FocusNextFunc(match func(T) bool) FocusRing[T] {
	if idx := nextIndexFunc(r.elems, r.focused, match); idx >= 0 {
		return r.FocusOn(idx)
	}
	return r
}

// FocusPrevFunc returns a ring focused on the previous element satisfying
// match. The scan runs backward from the focused element itself to the
// first, then wraps to run backward from the last element to the one
// after the focus. A focused element that matches therefore stays
// focused, unlike FocusNextFunc, which always looks strictly ahead first.
// Returns the ring unchanged if no element matches.
func (r FocusRing[T]) FocusPrevFunc(match func(T) bool) FocusRing[T] {
	if idx := prevIndexFunc(r.elems, r.focused, match); idx >= 0 {
		return r.FocusOn(idx)
	}
	return r
}

// At returns the element at index i. The index wraps, so At(-1) is the
// last element. The second return is false if the ring is empty.
func (r FocusRing[T]) At(i int) (T, bool) {
	if r.IsEmpty() {
		var zero T
		return zero, false
	}
	return r.elems[normalize(i, len(r.elems))], true
}

// First returns the first element. The second return is false if the ring
// is empty.
func (r FocusRing[T]) First() (T, bool) {
	return r.At(0)
}

// Last returns the last element. The second return is false if the ring
// is empty.
func (r FocusRing[T]) Last() (T, bool) {
	return r.At(len(r.elems) - 1)
}

// Focused returns the focused element. The second return is false if the
// ring is empty.
func (r FocusRing[T]) Focused() (T, bool) {
	return r.At(r.focused)
}

// FocusedIndex returns the index of the focused element, 0 if the ring is
// empty.
func (r FocusRing[T]) FocusedIndex() int {
	return r.focused
}

// Set returns a ring with the element at index i replaced by item. The
// index wraps. Returns the ring unchanged if empty.
func (r FocusRing[T]) Set(i int, item T) FocusRing[T] {
	if r.IsEmpty() {
		return r
	}
	elems := slices.Clone(r.elems)
	elems[normalize(i, len(elems))] = item
	return FocusRing[T]{elems: elems, focused: r.focused}
}

// SetFocused returns a ring with the focused element replaced by item.
// Returns the ring unchanged if empty.
func (r FocusRing[T]) SetFocused(item T) FocusRing[T] {
	return r.Set(r.focused, item)
}

// IsEmpty reports whether the ring has no elements.
func (r FocusRing[T]) IsEmpty() bool {
	return len(r.elems) == 0
}

// Len returns the number of elements.
func (r FocusRing[T]) Len() int {
	return len(r.elems)
}

// IsFocusedAt reports whether index i is the focused index. The index
// wraps; an empty ring reports false.
func (r FocusRing[T]) IsFocusedAt(i int) bool {
	if r.IsEmpty() {
		return false
	}
	return normalize(i, len(r.elems)) == r.focused
}

// FocusedMatches reports whether the focused element satisfies match. An
// empty ring reports false.
func (r FocusRing[T]) FocusedMatches(match func(T) bool) bool {
	item, ok := r.Focused()
	return ok && match(item)
}

// ToSlice returns the elements in ring order. The returned slice is safe
// to modify without affecting the ring.
func (r FocusRing[T]) ToSlice() []T {
	return slices.Clone(r.elems)
}

// All returns an iterator over index-element pairs in ring order. It
// starts at index 0, not at the focus; pair it with FocusedIndex or
// IsFocusedAt to highlight the focus while rendering.
func (r FocusRing[T]) All() iter.Seq2[int, T] {
	return slices.All(r.elems)
}

// String returns a compact description for debugging.
func (r FocusRing[T]) String() string {
	return fmt.Sprintf("FocusRing(%v, focus=%d)", r.elems, r.focused)
}
