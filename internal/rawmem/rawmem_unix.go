//go:build unix

package rawmem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve obtains n bytes of anonymous, private memory from the OS.
// The returned bytes live outside the Go heap: the garbage collector never
// scans them, and they stay resident until release is called.
func Reserve(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("rawmem: invalid reservation size %d", n)
	}
	buf, err := unix.Mmap(
		-1,
		0,
		n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("rawmem: mmap of %d bytes failed: %w", n, err)
	}
	release := func() error {
		if buf == nil {
			return nil
		}
		err := unix.Munmap(buf)
		buf = nil
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return buf, release, nil
}
