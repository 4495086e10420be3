package arena

import "unsafe"

// Push allocates n zeroed values of type T, aligned for T.
// T must not contain Go pointers. It panics like Alloc when the arena is full.
func Push[T any](a *Arena, n int) []T {
	assertPointerFree[T]()

	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)), n)
	if len(b) == 0 {
		// n == 0 or zero-sized T: nothing to place in the arena.
		return make([]T, n)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n) //nolint:gosec // b is sized and aligned for n values of T
}

// PushOne allocates a single zeroed T.
func PushOne[T any](a *Arena) *T {
	return &Push[T](a, 1)[0]
}
