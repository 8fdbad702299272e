package arena

import "unsafe"

// Resource is the narrow allocator capability expected by generic
// containers: aligned allocation, deallocation, and equality.
//
// Implementations:
//   - ArenaResource: forwards to one Arena; Deallocate is a no-op
type Resource interface {
	// Allocate returns size bytes aligned to align, or an error.
	Allocate(size, align uintptr) (unsafe.Pointer, error)

	// Deallocate returns storage previously obtained from Allocate with the
	// same size and alignment. Region-backed implementations may treat this
	// as a no-op.
	Deallocate(p unsafe.Pointer, size, align uintptr)

	// IsEqual reports whether storage allocated from this resource can be
	// deallocated through other, and vice versa.
	IsEqual(other Resource) bool
}

// ArenaResource adapts one Arena to the Resource capability so container
// consumers can draw their storage from it. The arena is borrowed and must
// outlive the adaptor.
type ArenaResource struct {
	a *Arena
}

// NewResource wraps a in an ArenaResource.
func NewResource(a *Arena) *ArenaResource {
	return &ArenaResource{a: a}
}

// Allocate forwards verbatim to the arena, propagating its errors unchanged.
func (r *ArenaResource) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	return r.a.Alloc(size, align)
}

// Deallocate is a no-op. Individual release is not part of the region
// allocation model; storage is reclaimed by rollback, Reset, or Close. This
// is a documented divergence from general-purpose allocator contracts.
func (r *ArenaResource) Deallocate(unsafe.Pointer, uintptr, uintptr) {}

// IsEqual reports identity equality: only the same adaptor instance
// compares equal. Even though Deallocate is a no-op, storage from one
// adaptor is not interchangeable with another's.
func (r *ArenaResource) IsEqual(other Resource) bool {
	o, ok := other.(*ArenaResource)
	return ok && o == r
}

// Compile-time interface check
var _ Resource = (*ArenaResource)(nil)
