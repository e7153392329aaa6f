package ring

// normalize maps an arbitrary index onto [0, n) using floored modulo, so
// negative indexes wrap backward from the end and indexes past n-1 wrap
// forward from the start. Returns 0 when n <= 0.
func normalize(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// lastIndexFunc returns the highest index whose element satisfies match,
// or -1 if none does.
func lastIndexFunc[T any](elems []T, match func(T) bool) int {
	for i := len(elems) - 1; i >= 0; i-- {
		if match(elems[i]) {
			return i
		}
	}
	return -1
}

// nextIndexFunc returns the index FocusNextFunc moves to: the lowest
// matching index strictly after focused, falling back to the lowest
// matching index at or before focused. Returns -1 if nothing matches.
func nextIndexFunc[T any](elems []T, focused int, match func(T) bool) int {
	for i := focused + 1; i < len(elems); i++ {
		if match(elems[i]) {
			return i
		}
	}
	for i := 0; i <= focused && i < len(elems); i++ {
		if match(elems[i]) {
			return i
		}
	}
	return -1
}

// prevIndexFunc returns the index FocusPrevFunc moves to: the highest
// matching index at or before focused, falling back to the highest
// matching index strictly after focused. Note the asymmetry with
// nextIndexFunc: the backward scan starts at the focused index itself.
// Returns -1 if nothing matches.
func prevIndexFunc[T any](elems []T, focused int, match func(T) bool) int {
	for i := min(focused, len(elems)-1); i >= 0; i-- {
		if match(elems[i]) {
			return i
		}
	}
	for i := len(elems) - 1; i > focused; i-- {
		if match(elems[i]) {
			return i
		}
	}
	return -1
}
