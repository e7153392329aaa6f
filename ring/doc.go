// Package ring provides immutable circular collections with focus and
// selection state for building list-style selector widgets.
//
// A ring is an ordered collection whose ends join: stepping past the last
// element wraps to the first, and stepping before the first wraps to the
// last. Three container types share this shape:
//
//   - FocusRing: a single focused element with wrap-around navigation
//   - SelectRing: FocusRing plus at most one selected element
//   - MultiSelectRing: FocusRing plus a set of selected elements
//
// Every indexed operation accepts any integer and wraps it onto the valid
// range, so At(-1) reads the last element and FocusOn(Len()) focuses the
// first. Operations on an empty ring are safe: mutators return the ring
// unchanged and accessors report absence.
//
// # Value Semantics
//
// Each container is an immutable value type: operations return a new
// value and never change the receiver, so holding an old ring is holding
// a snapshot.
//
//	a := ring.NewFocusRing("home", "docs", "settings")
//	b := a.FocusNext()
//	// a still focuses "home"; b focuses "docs"
//
// # Focus and Selection
//
// Focus is where the cursor is; selection is what has been picked. The
// two never interact: navigation keeps the selection and selecting keeps
// the focus.
//
//	r := ring.NewSelectRing("red", "green", "blue")
//	r = r.FocusNext()     // cursor on "green"
//	r = r.SelectFocused() // pick "green"
//	r = r.FocusNext()     // cursor on "blue"; "green" stays selected
//
// SelectRing holds at most one selection; selecting another element
// replaces it. MultiSelectRing holds a set with the usual set laws.
//
// # Rendering
//
// The MapEach functions turn a ring into one output per element,
// dispatching on element state. The focused function wins when the
// focused element is also selected:
//
//	labels := ring.MapEachSelect(r,
//		func(s string) string { return "  " + s }, // base
//		func(s string) string { return "> " + s }, // focused
//		func(s string) string { return "* " + s }, // selected
//	)
//
// # Thread Safety
//
// Ring values are safe to share across goroutines: no operation mutates
// shared state. Concurrent writers should coordinate on where the
// current value is stored, not on the value itself.
package ring
