package ring

import (
	"slices"
	"testing"
)

// FuzzFocusRingOps drives a FocusRing through arbitrary operation
// sequences decoded from the fuzz input.
//
// Invariants, checked after every step:
//  1. the focused index is in [0, Len), or 0 on an empty ring
//  2. the receiver of each operation is left untouched
//  3. a full forward cycle returns the focus to where it started
func FuzzFocusRingOps(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 1, 2})          // push, next, prev
	f.Add([]byte{0, 0, 0, 4, 4, 4}) // grow then shrink past empty
	f.Add([]byte{0, 7, 0, 7, 3})    // interleaved pushes and a focus jump
	f.Add([]byte{5, 6, 1, 4, 2, 0, 3, 255, 128, 64})

	f.Fuzz(func(t *testing.T, ops []byte) {
		check := func(r FocusRing[int]) {
			t.Helper()
			if r.IsEmpty() {
				if r.FocusedIndex() != 0 {
					t.Fatalf("empty ring has focused index %d, want 0", r.FocusedIndex())
				}
				return
			}
			if r.FocusedIndex() < 0 || r.FocusedIndex() >= r.Len() {
				t.Fatalf("focused index %d out of range [0, %d)", r.FocusedIndex(), r.Len())
			}
		}

		r := NewFocusRing[int]()
		for _, b := range ops {
			arg := int(b / 7)
			before := r.ToSlice()
			beforeFocus := r.FocusedIndex()

			var next FocusRing[int]
			switch b % 7 {
			case 0:
				next = r.Push(arg)
			case 1:
				next = r.FocusNext()
			case 2:
				next = r.FocusPrev()
			case 3:
				next = r.FocusOn(arg - 18)
			case 4:
				next = r.RemoveAt(arg - 18)
			case 5:
				next = r.Prepend(arg, arg+1)
			case 6:
				next = r.FocusNextFunc(func(v int) bool { return v%3 == 0 })
			}

			if !slices.Equal(r.ToSlice(), before) || r.FocusedIndex() != beforeFocus {
				t.Fatalf("operation %d mutated its receiver: %v focus=%d, want %v focus=%d",
					b%7, r.ToSlice(), r.FocusedIndex(), before, beforeFocus)
			}
			check(next)
			r = next
		}

		cycled := r
		for i := 0; i < r.Len(); i++ {
			cycled = cycled.FocusNext()
		}
		if cycled.FocusedIndex() != r.FocusedIndex() {
			t.Fatalf("full cycle moved focus from %d to %d", r.FocusedIndex(), cycled.FocusedIndex())
		}
	})
}
