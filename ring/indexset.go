package ring

import (
	"maps"
	"slices"
)

// indexSet is the selection set backing MultiSelectRing. A nil set is a
// valid empty set for reads; writes go through clone, which always
// allocates. Sets are never mutated once stored in a ring, so rings may
// share a set freely.
type indexSet map[int]struct{}

func (s indexSet) has(i int) bool {
	_, ok := s[i]
	return ok
}

// clone returns a copy that is never nil, so it is safe to insert into.
func (s indexSet) clone() indexSet {
	if len(s) == 0 {
		return make(indexSet)
	}
	return maps.Clone(s)
}

// shifted returns a fresh set with every member moved by delta.
func (s indexSet) shifted(delta int) indexSet {
	if len(s) == 0 {
		return nil
	}
	out := make(indexSet, len(s))
	for i := range s {
		out[i+delta] = struct{}{}
	}
	return out
}

// reindexed returns a fresh set reflecting the removal of the element at
// index removed: that index is dropped and members above it shift down by
// one, tracking the elements they referred to.
func (s indexSet) reindexed(removed int) indexSet {
	if len(s) == 0 {
		return nil
	}
	out := make(indexSet, len(s))
	for i := range s {
		switch {
		case i == removed:
			// dropped with its element
		case i > removed:
			out[i-1] = struct{}{}
		default:
			out[i] = struct{}{}
		}
	}
	return out
}

// sorted returns the members in ascending order.
func (s indexSet) sorted() []int {
	if len(s) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(s))
}
