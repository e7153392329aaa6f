// Package zipper provides a non-empty circular collection navigated by a
// focus zipper. It is an experimental alternative to package ring's
// array-and-index containers.
//
// A zipper ring keeps the elements before and after the focus in two
// sequences, so stepping the focus moves one element between them rather
// than re-indexing. The ring can never be empty: constructors either
// start from a first element or report that none was available. There is
// no indexed access, no removal, and no selection state; when those are
// needed, use package ring.
//
// # Usage
//
//	tabs := zipper.FromSliceOr("home", openTabs)
//	tabs = tabs.FocusNext() // step forward, wrapping past the end
//	if next, ok := tabs.FocusNextFunc(isDirty); ok {
//		tabs = next // jump to the next dirty tab
//	}
//
// # Thread Safety
//
// Ring values are safe to share across goroutines: no operation mutates
// shared state.
package zipper
