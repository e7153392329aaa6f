package ring

// The element-type-changing operations live here as package-level
// functions: Go methods cannot introduce a type parameter for the output
// element type.

// Map returns a FocusRing with fn applied to every element, preserving
// the focus index.
func Map[T, U any](r FocusRing[T], fn func(T) U) FocusRing[U] {
	return FocusRing[U]{elems: mapSlice(r.elems, fn), focused: r.focused}
}

// MapSelect returns a SelectRing with fn applied to every element,
// preserving focus and selection.
func MapSelect[T, U any](r SelectRing[T], fn func(T) U) SelectRing[U] {
	return SelectRing[U]{ring: Map(r.ring, fn), sel: r.sel}
}

// MapMulti returns a MultiSelectRing with fn applied to every element,
// preserving focus and the selected set.
func MapMulti[T, U any](r MultiSelectRing[T], fn func(T) U) MultiSelectRing[U] {
	return MultiSelectRing[U]{ring: Map(r.ring, fn), selected: r.selected}
}

// MapFocused applies fn to the focused element and returns the result.
// The ring is not changed. The second return is false if the ring is
// empty, in which case fn is not called.
func MapFocused[T, U any](r FocusRing[T], fn func(T) U) (U, bool) {
	item, ok := r.Focused()
	if !ok {
		var zero U
		return zero, false
	}
	return fn(item), true
}

// MapFocusedSelect applies fn to the focused element and returns the
// result. The second return is false if the ring is empty.
func MapFocusedSelect[T, U any](r SelectRing[T], fn func(T) U) (U, bool) {
	return MapFocused(r.ring, fn)
}

// MapFocusedMulti applies fn to the focused element and returns the
// result. The second return is false if the ring is empty.
func MapFocusedMulti[T, U any](r MultiSelectRing[T], fn func(T) U) (U, bool) {
	return MapFocused(r.ring, fn)
}

// MapEach renders every element through one of two functions: focused for
// the focused element, base for the rest. The output is in ring order,
// one value per element.
func MapEach[T, U any](r FocusRing[T], base, focused func(T) U) []U {
	out := make([]U, len(r.elems))
	for i, item := range r.elems {
		if i == r.focused {
			out[i] = focused(item)
		} else {
			out[i] = base(item)
		}
	}
	return out
}

// MapEachSelect renders every element through one of three functions:
// focused for the focused element, selected for selected elements, base
// for the rest. Focus wins when the focused element is also selected.
// The output is in ring order, one value per element.
func MapEachSelect[T, U any](r SelectRing[T], base, focused, selected func(T) U) []U {
	out := make([]U, r.ring.Len())
	for i, item := range r.ring.elems {
		switch {
		case i == r.ring.focused:
			out[i] = focused(item)
		case r.IsSelectedAt(i):
			out[i] = selected(item)
		default:
			out[i] = base(item)
		}
	}
	return out
}

// MapEachMulti renders every element through one of three functions:
// focused for the focused element, selected for selected elements, base
// for the rest. Focus wins when the focused element is also selected.
// The output is in ring order, one value per element.
func MapEachMulti[T, U any](r MultiSelectRing[T], base, focused, selected func(T) U) []U {
	out := make([]U, r.ring.Len())
	for i, item := range r.ring.elems {
		switch {
		case i == r.ring.focused:
			out[i] = focused(item)
		case r.selected.has(i):
			out[i] = selected(item)
		default:
			out[i] = base(item)
		}
	}
	return out
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
