//go:build !unix

// Package rawmem reserves raw storage extents for arena blocks. On unix the
// storage is an anonymous mapping outside the Go heap; elsewhere it falls
// back to a heap-allocated slice with a no-op release.
package rawmem

import "fmt"

// Reserve obtains n bytes of zeroed storage from the Go heap.
func Reserve(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("rawmem: invalid reservation size %d", n)
	}
	return make([]byte, n), func() error { return nil }, nil
}
