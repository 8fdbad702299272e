package arena

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/arenakit/internal/mem"
	"github.com/joshuapare/arenakit/internal/rawmem"
)

// block is one contiguous raw storage extent in an arena chain. It is a
// passive unit: the allocation policy lives in Arena, the block only tracks
// its own bump cursor. A block's identity is its storage address, so blocks
// are never copied by value once linked into a chain.
type block struct {
	buf []byte  // raw storage, len(buf) > 0 for the block's lifetime
	off uintptr // bump cursor, 0 <= off <= len(buf)

	// next is the exclusive ownership link to the following block. The
	// arena owns the chain head and, transitively, every block after it.
	next *block

	// release returns the storage to its reservation source. Invoked
	// exactly once, during Arena.Close, in chain order.
	release func() error
}

// newBlock reserves capacity bytes of raw storage.
func newBlock(capacity uintptr) (*block, error) {
	buf, release, err := rawmem.Reserve(int(capacity))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGrowFail, err)
	}
	return &block{buf: buf, release: release}, nil
}

func (b *block) capacity() uintptr {
	return uintptr(len(b.buf))
}

// reset rewinds the bump cursor, making the full extent reusable. The bytes
// themselves are left untouched.
func (b *block) reset() {
	b.off = 0
}

// tryAlloc attempts a bump allocation within this block. align must be a
// power of two. Returns nil when the aligned request does not fit.
func (b *block) tryAlloc(size, align uintptr) unsafe.Pointer {
	base := unsafe.Pointer(&b.buf[0])
	aligned := mem.AlignUp(uintptr(base)+b.off, align)
	end := uintptr(base) + uintptr(len(b.buf))
	if aligned > end || end-aligned < size {
		return nil
	}
	off := aligned - uintptr(base)
	b.off = off + size
	return unsafe.Add(base, off)
}
