package ring

import (
	"slices"
	"testing"
	"testing/quick"
)

// TestPropertyFocusOnWithinRange verifies that FocusOn lands the focus on
// a valid index whatever integer it is given.
func TestPropertyFocusOnWithinRange(t *testing.T) {
	f := func(items []uint8, i int16) bool {
		r := focusRingFromBytes(items).FocusOn(int(i))
		if r.IsEmpty() {
			return r.FocusedIndex() == 0
		}
		return r.FocusedIndex() >= 0 && r.FocusedIndex() < r.Len()
	}

	cfg := &quick.Config{MaxCount: 1000}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

// TestPropertyNextPrevInverse verifies that stepping forward then backward
// restores the focus, and the other way around, from any starting index.
func TestPropertyNextPrevInverse(t *testing.T) {
	f := func(items []uint8, start int16) bool {
		r := focusRingFromBytes(items).FocusOn(int(start))
		return r.FocusNext().FocusPrev().FocusedIndex() == r.FocusedIndex() &&
			r.FocusPrev().FocusNext().FocusedIndex() == r.FocusedIndex()
	}

	cfg := &quick.Config{MaxCount: 1000}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

// TestPropertyFullCycleIdentity verifies that stepping forward Len times
// walks the whole ring back to the starting state.
func TestPropertyFullCycleIdentity(t *testing.T) {
	f := func(items []uint8, start int16) bool {
		r := focusRingFromBytes(items).FocusOn(int(start))
		cycled := r
		for i := 0; i < r.Len(); i++ {
			cycled = cycled.FocusNext()
		}
		return cycled.FocusedIndex() == r.FocusedIndex() &&
			slices.Equal(cycled.ToSlice(), r.ToSlice())
	}

	cfg := &quick.Config{MaxCount: 1000}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

// TestPropertyRemoveKeepsInvariants verifies that removal shortens the
// ring by one and leaves the focus on a valid index, for any target.
func TestPropertyRemoveKeepsInvariants(t *testing.T) {
	f := func(items []uint8, start, k int16) bool {
		r := focusRingFromBytes(items).FocusOn(int(start))
		got := r.RemoveAt(int(k))
		if r.IsEmpty() {
			return got.IsEmpty() && got.FocusedIndex() == 0
		}
		if got.Len() != r.Len()-1 {
			return false
		}
		if got.IsEmpty() {
			return got.FocusedIndex() == 0
		}
		return got.FocusedIndex() >= 0 && got.FocusedIndex() < got.Len()
	}

	cfg := &quick.Config{MaxCount: 1000}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

// TestPropertySelectionExclusive verifies that after any two selects a
// SelectRing holds exactly the later selection.
func TestPropertySelectionExclusive(t *testing.T) {
	f := func(items []uint8, j, k int16) bool {
		r := selectRingFromBytes(items).SelectAt(int(j)).SelectAt(int(k))
		if r.IsEmpty() {
			return r.IsNoneSelected()
		}
		idx, ok := r.SelectedIndex()
		return ok && idx == normalize(int(k), r.Len())
	}

	cfg := &quick.Config{MaxCount: 1000}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

// TestPropertyRemoveKeepsSelectionValid verifies that a selection that
// survives a removal still points inside the ring.
func TestPropertyRemoveKeepsSelectionValid(t *testing.T) {
	f := func(items []uint8, j, k int16) bool {
		r := selectRingFromBytes(items).SelectAt(int(j)).RemoveAt(int(k))
		idx, ok := r.SelectedIndex()
		if !ok {
			return true
		}
		return idx >= 0 && idx < r.Len()
	}

	cfg := &quick.Config{MaxCount: 1000}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

// TestPropertyToggleInvolution verifies that toggling the same index
// twice restores the selected set exactly.
func TestPropertyToggleInvolution(t *testing.T) {
	f := func(items []uint8, picks []int16, k int16) bool {
		r := multiRingFromBytes(items)
		for _, p := range picks {
			r = r.SelectAt(int(p))
		}
		toggled := r.ToggleAt(int(k)).ToggleAt(int(k))
		return slices.Equal(toggled.SelectedIndexes(), r.SelectedIndexes())
	}

	cfg := &quick.Config{MaxCount: 1000}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

// TestPropertySelectAllCount verifies the counting laws of a full
// selection.
func TestPropertySelectAllCount(t *testing.T) {
	f := func(items []uint8) bool {
		r := multiRingFromBytes(items).SelectAll()
		return r.CountSelected() == r.Len() &&
			r.CountDeselected() == 0 &&
			r.IsAllSelected()
	}

	cfg := &quick.Config{MaxCount: 1000}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

func focusRingFromBytes(items []uint8) FocusRing[int] {
	elems := make([]int, len(items))
	for i, b := range items {
		elems[i] = int(b)
	}
	return NewFocusRing(elems...)
}

func selectRingFromBytes(items []uint8) SelectRing[int] {
	elems := make([]int, len(items))
	for i, b := range items {
		elems[i] = int(b)
	}
	return NewSelectRing(elems...)
}

func multiRingFromBytes(items []uint8) MultiSelectRing[int] {
	elems := make([]int, len(items))
	for i, b := range items {
		elems[i] = int(b)
	}
	return NewMultiSelectRing(elems...)
}
