package arena

import (
	"fmt"
	"unsafe"
)

// Vec is a minimal growable sequence drawing its storage from a Resource.
// With an ArenaResource behind it, every discarded backing array stays in
// the region until the arena is reclaimed; Deallocate calls are no-ops.
//
// The element type must not contain Go pointers when the resource is
// region-backed, same as New.
type Vec[T any] struct {
	res   Resource
	elems []T // backing array, resource-owned storage
	n     int
}

// NewVec creates an empty Vec drawing storage from res.
func NewVec[T any](res Resource) *Vec[T] {
	return &Vec[T]{res: res}
}

// Len returns the number of elements held.
func (v *Vec[T]) Len() int {
	return v.n
}

// Cap returns the capacity of the current backing array.
func (v *Vec[T]) Cap() int {
	return len(v.elems)
}

// Push appends x, growing the backing array if needed.
func (v *Vec[T]) Push(x T) error {
	if v.n == len(v.elems) {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.elems[v.n] = x
	v.n++
	return nil
}

// Pop removes and returns the last element. The second result is false when
// the Vec is empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	x := v.elems[v.n]
	v.elems[v.n] = zero
	return x, true
}

// At returns the element at index i. Panics when i is out of range.
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("arena: Vec index %d out of range [0:%d]", i, v.n))
	}
	return v.elems[i]
}

// grow doubles the backing array (floor 4), moves the elements, and hands
// the old storage back to the resource.
func (v *Vec[T]) grow() error {
	newCap := 2 * len(v.elems)
	if newCap < 4 {
		newCap = 4
	}

	var zero T
	elem := unsafe.Sizeof(zero)
	if elem == 0 {
		v.elems = make([]T, newCap)
		return nil
	}

	p, err := v.res.Allocate(elem*uintptr(newCap), unsafe.Alignof(zero))
	if err != nil {
		return err
	}
	fresh := unsafe.Slice((*T)(p), newCap)
	clear(fresh[v.n:])
	copy(fresh, v.elems[:v.n])

	if old := v.elems; len(old) > 0 {
		v.res.Deallocate(unsafe.Pointer(&old[0]), elem*uintptr(len(old)), unsafe.Alignof(zero))
	}
	v.elems = fresh
	return nil
}
