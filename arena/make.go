package arena

import "unsafe"

// New allocates a zeroed T inside the arena. Zero-size types fall back to
// the regular heap, which costs nothing for them.
//
// T must not contain Go pointers: arena storage is invisible to the garbage
// collector, so a pointer stored there does not keep its target alive.
func New[T any](a *Arena) (*T, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return new(T), nil
	}
	p, err := a.Alloc(size, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	t := (*T)(p)
	// Blocks hand out uninitialized bytes; reused regions hold stale data.
	*t = zero
	return t, nil
}

// Make allocates a T inside the arena initialized to v.
func Make[T any](a *Arena, v T) (*T, error) {
	t, err := New[T](a)
	if err != nil {
		return nil, err
	}
	*t = v
	return t, nil
}

// Build allocates a T and runs init on it. If init fails, the allocation is
// rolled back to the pre-allocation checkpoint and init's error is returned
// unchanged, so the bump cursor never leaks space for a value that was
// never successfully built.
func Build[T any](a *Arena, init func(*T) error) (*T, error) {
	m := a.Marker()
	t, err := New[T](a)
	if err != nil {
		return nil, err
	}
	if err := init(t); err != nil {
		a.RollbackTo(m)
		return nil, err
	}
	return t, nil
}

// MakeSlice allocates a slice of n zeroed elements inside the arena.
// Returns (nil, nil) when n <= 0. The element type must not contain Go
// pointers, same as New.
func MakeSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elem := unsafe.Sizeof(zero)
	if elem == 0 {
		return make([]T, n), nil
	}
	if uintptr(n) > maxAllocSize/elem {
		return nil, ErrSizeOverflow
	}
	p, err := a.Alloc(elem*uintptr(n), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	s := unsafe.Slice((*T)(p), n)
	clear(s)
	return s, nil
}
