package arena

import (
	"unsafe"

	"github.com/joshuapare/arenakit/internal/mem"
)

const (
	// DefaultBlockSize is the block capacity used when NewArena is given a
	// non-positive size (64 KiB).
	DefaultBlockSize = 64 * 1024

	// MinBlockSize is the floor for the configured block capacity. Smaller
	// requests are clamped, not rejected.
	MinBlockSize = 1024

	// defaultAlign is wide enough for any normally-aligned Go value. Callers
	// passing a zero or non-power-of-two alignment get this instead.
	defaultAlign = unsafe.Sizeof(uintptr(0))

	// maxAllocSize bounds a single request to what a slice can address.
	maxAllocSize = uintptr(^uint(0) >> 1)
)

// Arena is a region allocator: a growable chain of storage blocks serving
// bump allocations in O(1), with checkpoint/rollback instead of per-object
// free. Not goroutine-safe; use one arena per goroutine or synchronize
// externally.
type Arena struct {
	blockSize uintptr // configured minimum block capacity
	head      *block  // owning reference to the chain
	active    *block  // non-owning cursor into the chain, never nil while open
	closed    bool
}

// Marker is an opaque checkpoint of an arena's allocation state. It is valid
// only while the arena that produced it is open. The zero Marker rolls back
// nothing.
type Marker struct {
	b   *block
	off uintptr
}

// NewArena creates an arena whose blocks are at least blockSize bytes.
// Values below MinBlockSize are clamped to it; values <= 0 select
// DefaultBlockSize. The first block is reserved eagerly, so a usable arena
// never has an empty chain.
func NewArena(blockSize int) (*Arena, error) {
	size := uintptr(blockSize)
	if blockSize <= 0 {
		size = DefaultBlockSize
	} else if size < MinBlockSize {
		size = MinBlockSize
	}
	b, err := newBlock(size)
	if err != nil {
		return nil, err
	}
	return &Arena{blockSize: size, head: b, active: b}, nil
}

// Alloc returns size bytes of uninitialized storage aligned to align.
// A zero size returns (nil, nil). A zero or non-power-of-two alignment is
// silently replaced with the default alignment. The storage stays valid
// until the arena is closed or a rollback past its checkpoint discards it;
// there is no per-allocation free.
func (a *Arena) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}
	if a.closed {
		return nil, ErrClosed
	}
	if !mem.IsPowerOfTwo(align) {
		align = defaultAlign
	}
	if p := a.active.tryAlloc(size, align); p != nil {
		return p, nil
	}
	return a.allocSlow(size, align)
}

// allocSlow handles allocation when the active block is exhausted.
func (a *Arena) allocSlow(size, align uintptr) (unsafe.Pointer, error) {
	// Worst case the allocation needs align-1 padding bytes; size+align
	// always covers it. Checked before any chain mutation so a failed call
	// leaves the arena untouched.
	need, wrapped := mem.AddOverflows(size, align)
	if wrapped || need > maxAllocSize {
		return nil, ErrSizeOverflow
	}

	// Rollback leaves reset blocks after the active one; their capacity is
	// reused before the chain grows.
	for b := a.active.next; b != nil; b = b.next {
		a.active = b
		if p := b.tryAlloc(size, align); p != nil {
			return p, nil
		}
	}

	// Doubling policy, floored at the immediate need and the configured
	// minimum, so per-block capacity is non-decreasing over time.
	newCap, wrapped := mem.AddOverflows(a.active.capacity(), a.active.capacity())
	if wrapped || newCap > maxAllocSize {
		newCap = need
	}
	if newCap < need {
		newCap = need
	}
	if newCap < a.blockSize {
		newCap = a.blockSize
	}

	b, err := newBlock(newCap)
	if err != nil {
		return nil, err
	}
	a.active.next = b
	a.active = b

	if p := b.tryAlloc(size, align); p != nil {
		return p, nil
	}
	return nil, ErrNoSpace
}

// AllocBytes returns a byte slice of length n backed by arena storage, at
// the default alignment. Returns (nil, nil) when n <= 0.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	p, err := a.Alloc(uintptr(n), defaultAlign)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(p), n), nil
}

// Marker captures the current allocation position. O(1), no side effects.
func (a *Arena) Marker() Marker {
	if a.closed {
		return Marker{}
	}
	return Marker{b: a.active, off: a.active.off}
}

// RollbackTo restores the allocation position saved in m and rewinds every
// block after it, making that trailing capacity reusable. Rollback reclaims
// bytes, not objects: values placed after the marker are not finalized in
// any way, their storage is simply up for reuse. Blocks are never unlinked,
// so a marker from this arena is always safe to replay.
func (a *Arena) RollbackTo(m Marker) {
	if m.b == nil || a.closed {
		return
	}
	a.active = m.b
	a.active.off = m.off
	for b := a.active.next; b != nil; b = b.next {
		b.reset()
	}
}

// Reset rewinds the whole arena in O(blocks), keeping every reserved block
// for reuse. Equivalent to rolling back to a marker taken at construction.
func (a *Arena) Reset() {
	if a.closed {
		return
	}
	for b := a.head; b != nil; b = b.next {
		b.reset()
	}
	a.active = a.head
}

// Close releases every block's storage exactly once, in chain order, and
// marks the arena unusable. Close is idempotent; the first release error is
// returned after the full chain has been torn down. All pointers previously
// handed out become invalid.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var err error
	for b := a.head; b != nil; {
		next := b.next
		if rerr := b.release(); rerr != nil && err == nil {
			err = rerr
		}
		b.buf = nil
		b.next = nil
		b = next
	}
	a.head = nil
	a.active = nil
	return err
}
