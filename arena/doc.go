// Package arena implements a region allocator: a growable chain of storage
// blocks serving bump allocations in O(1), with bulk reclamation instead of
// per-object free.
//
// # Overview
//
// An arena suits callers that allocate many short-to-medium-lived values
// whose lifetimes end together: parsers, per-request scratch space, batch
// pipelines. Allocation advances a cursor inside the active block; when the
// block is exhausted the chain grows by a doubling policy. Individual
// deallocation does not exist — reclamation happens through checkpoint
// rollback, Reset, or Close.
//
// # Basic Usage
//
//	a, err := arena.NewArena(0) // default 64 KiB blocks
//	if err != nil {
//		return err
//	}
//	defer a.Close()
//
//	buf, err := a.AllocBytes(1024)
//	p, err := arena.Make(a, 123)      // *int initialized to 123
//	s, err := arena.MakeSlice[byte](a, 256)
//
//	a.Reset() // O(blocks) rewind, keeps reserved storage for reuse
//
// # Checkpoints
//
// Marker and RollbackTo provide scoped reclamation:
//
//	m := a.Marker()
//	// ... temporary allocations ...
//	a.RollbackTo(m) // bytes after m become reusable
//
// Rollback reclaims bytes, not objects: nothing is finalized, the storage
// is simply up for reuse. The same contract backs Build, which rolls back
// automatically when an initializer fails.
//
// # Pointer Contract
//
// Block storage is reserved outside the Go heap where the platform allows
// (anonymous mappings on unix), and in all cases is invisible to the
// garbage collector. Values placed in an arena must therefore not contain
// Go pointers unless the referents are kept alive elsewhere. Pointers
// returned by Alloc, New, Make, and MakeSlice are valid until the arena is
// closed or a rollback discards their region.
//
// # Resource Adaptor
//
// ArenaResource exposes the Resource capability (Allocate, no-op
// Deallocate, identity IsEqual) so generic containers such as Vec can draw
// their storage from an arena:
//
//	res := arena.NewResource(a)
//	v := arena.NewVec[int64](res)
//	err := v.Push(42)
//
// # Thread Safety
//
// An Arena is single-threaded by contract: no internal locking exists, and
// none of the operations block or yield. Callers needing concurrency should
// construct one arena per goroutine; sharing one arena without external
// synchronization is a data race.
package arena
