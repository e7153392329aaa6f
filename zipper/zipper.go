package zipper

import (
	"fmt"
	"iter"
	"slices"
)

// Ring is a circular collection of at least one element, navigated by
// moving a focus one step at a time. Steps wrap at either end; there is
// no indexed access, no removal, and no selection state. Ring is an
// immutable value type: every operation returns a new ring and leaves
// the receiver untouched.
//
// The zero value is a ring holding a single zero value of T.
type Ring[T any] struct {
	// left holds the elements before the focus with the nearest first;
	// right holds the elements after the focus in ring order. Stored
	// slices are never mutated, so rings may share them.
	left    []T
	focused T
	right   []T
}

// Singleton returns a ring holding only item, focused on it.
func Singleton[T any](item T) Ring[T] {
	return Ring[T]{focused: item}
}

// FromSlice returns a ring holding items in order, focused on the first.
// The second return is false if items is empty, since a ring cannot be.
func FromSlice[T any](items []T) (Ring[T], bool) {
	if len(items) == 0 {
		return Ring[T]{}, false
	}
	return Ring[T]{
		focused: items[0],
		right:   slices.Clone(items[1:]),
	}, true
}

// FromSliceOr returns a ring holding items in order, focused on the
// first, or a ring holding only fallback if items is empty.
func FromSliceOr[T any](fallback T, items []T) Ring[T] {
	if r, ok := FromSlice(items); ok {
		return r
	}
	return Singleton(fallback)
}

// Push returns a ring with item added after the last element. The focus
// is unchanged.
func (r Ring[T]) Push(item T) Ring[T] {
	return r.Append(item)
}

// Append returns a ring with items added after the last element,
// preserving their order. The focus is unchanged.
func (r Ring[T]) Append(items ...T) Ring[T] {
	if len(items) == 0 {
		return r
	}
	right := make([]T, 0, len(r.right)+len(items))
	right = append(right, r.right...)
	right = append(right, items...)
	return Ring[T]{left: r.left, focused: r.focused, right: right}
}

// Prepend returns a ring with items added before the first element,
// preserving their order. The focus is unchanged.
func (r Ring[T]) Prepend(items ...T) Ring[T] {
	if len(items) == 0 {
		return r
	}
	left := make([]T, 0, len(r.left)+len(items))
	left = append(left, r.left...)
	for i := len(items) - 1; i >= 0; i-- {
		left = append(left, items[i])
	}
	return Ring[T]{left: left, focused: r.focused, right: r.right}
}

// FocusNext returns a ring focused one step forward, wrapping to the
// first element when the focus is on the last.
func (r Ring[T]) FocusNext() Ring[T] {
	if len(r.right) == 0 {
		return r.FocusFirst()
	}
	left := make([]T, 0, len(r.left)+1)
	left = append(left, r.focused)
	left = append(left, r.left...)
	return Ring[T]{left: left, focused: r.right[0], right: r.right[1:]}
}

// FocusPrev returns a ring focused one step backward, wrapping to the
// last element when the focus is on the first.
func (r Ring[T]) FocusPrev() Ring[T] {
	if len(r.left) == 0 {
		return r.FocusLast()
	}
	right := make([]T, 0, len(r.right)+1)
	right = append(right, r.focused)
	right = append(right, r.right...)
	return Ring[T]{left: r.left[1:], focused: r.left[0], right: right}
}

// FocusFirst returns a ring focused on the first element. Everything
// between the first element and the old focus, along with the old focus,
// moves after the new focus in ring order.
func (r Ring[T]) FocusFirst() Ring[T] {
	if len(r.left) == 0 {
		return r
	}
	right := make([]T, 0, len(r.left)+len(r.right))
	for i := len(r.left) - 2; i >= 0; i-- {
		right = append(right, r.left[i])
	}
	right = append(right, r.focused)
	right = append(right, r.right...)
	return Ring[T]{focused: r.left[len(r.left)-1], right: right}
}

// FocusLast returns a ring focused on the last element. Everything
// between the old focus and the last element, along with the old focus,
// moves before the new focus in ring order.
func (r Ring[T]) FocusLast() Ring[T] {
	if len(r.right) == 0 {
		return r
	}
	left := make([]T, 0, len(r.left)+len(r.right))
	for i := len(r.right) - 2; i >= 0; i-- {
		left = append(left, r.right[i])
	}
	left = append(left, r.focused)
	left = append(left, r.left...)
	return Ring[T]{left: left, focused: r.right[len(r.right)-1]}
}

// FocusFirstFunc returns a ring focused on the first element satisfying
// match, scanning the whole ring from the first element. The second
// return is false if no element matches, in which case the ring is
// returned unchanged.
func (r Ring[T]) FocusFirstFunc(match func(T) bool) (Ring[T], bool) {
	probe := r.FocusFirst()
	for i := 0; i < r.Len(); i++ {
		if match(probe.focused) {
			return probe, true
		}
		probe = probe.FocusNext()
	}
	return r, false
}

// FocusNextFunc returns a ring focused on the next element satisfying
// match, scanning forward from the element after the focus and wrapping.
// The scan stops after visiting every other element once, so the focused
// element itself is never a candidate: on a single-element ring the
// second return is always false. The second return is false if no other
// element matches, in which case the ring is returned unchanged.
func (r Ring[T]) FocusNextFunc(match func(T) bool) (Ring[T], bool) {
	probe := r
	for i := 0; i < r.Len()-1; i++ {
		probe = probe.FocusNext()
		if match(probe.focused) {
			return probe, true
		}
	}
	return r, false
}

// Focused returns the focused element. A ring is never empty, so there
// is always one.
func (r Ring[T]) Focused() T {
	return r.focused
}

// MapFocused returns a ring with fn applied to the focused element only.
func (r Ring[T]) MapFocused(fn func(T) T) Ring[T] {
	return Ring[T]{left: r.left, focused: fn(r.focused), right: r.right}
}

// Len returns the number of elements. It is always at least 1.
func (r Ring[T]) Len() int {
	return len(r.left) + 1 + len(r.right)
}

// ToSlice returns the elements in ring order, first element first. The
// returned slice is safe to modify without affecting the ring.
func (r Ring[T]) ToSlice() []T {
	out := make([]T, 0, r.Len())
	for i := len(r.left) - 1; i >= 0; i-- {
		out = append(out, r.left[i])
	}
	out = append(out, r.focused)
	out = append(out, r.right...)
	return out
}

// All returns an iterator over the elements in ring order, first element
// first.
func (r Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(r.left) - 1; i >= 0; i-- {
			if !yield(r.left[i]) {
				return
			}
		}
		if !yield(r.focused) {
			return
		}
		for _, item := range r.right {
			if !yield(item) {
				return
			}
		}
	}
}

// String returns a compact description for debugging.
func (r Ring[T]) String() string {
	return fmt.Sprintf("Ring(%v, focus=%v)", r.ToSlice(), r.focused)
}

// Map returns a ring with fn applied to every element, preserving the
// focus position. It is a package-level function because Go methods
// cannot introduce a type parameter for the output element type.
func Map[T, U any](r Ring[T], fn func(T) U) Ring[U] {
	return Ring[U]{
		left:    mapSlice(r.left, fn),
		focused: fn(r.focused),
		right:   mapSlice(r.right, fn),
	}
}

// mapSlice returns a new slice with fn applied to every element.
func mapSlice[T, U any](items []T, fn func(T) U) []U {
	if len(items) == 0 {
		return nil
	}
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
