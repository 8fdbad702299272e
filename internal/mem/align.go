// Package mem provides alignment and overflow arithmetic for the arena
// allocator. All helpers operate on uintptr so they can be applied directly
// to addresses as well as sizes.
package mem

// IsPowerOfTwo reports whether x is a power of two. Zero is not.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// AlignUp returns the smallest value >= addr that is a multiple of align.
// align must be a power of two.
//
// Example:
//
//	AlignUp(13, 8) = 16
//	AlignUp(16, 8) = 16
//	AlignUp(17, 8) = 24
func AlignUp(addr, align uintptr) uintptr {
	return (addr + (align - 1)) &^ (align - 1)
}

// AddOverflows returns a+b and whether the addition wrapped around.
func AddOverflows(a, b uintptr) (uintptr, bool) {
	sum := a + b
	return sum, sum < a
}
