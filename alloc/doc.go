// Package alloc provides composable memory allocators over caller-supplied blocks.
//
// # Overview
//
// The package defines a small set of capability contracts and building blocks
// that combine, by wrapping rather than by inheritance, into application
// specific allocation strategies. No allocator in this module reserves memory
// from the operating system or the Go heap on its own: base allocators carve
// blocks out of memory handed to them, and decorators forward to an inner
// allocator.
//
// # Capability Contracts
//
// Every allocator implements Allocator:
//
//   - Alloc / AllocZeroed(layout): allocate a block
//   - Dealloc(block, layout): release a block
//   - Grow / GrowZeroed / Shrink(block, old, new): resize, moving if needed
//
// Optional capabilities are separate interfaces, discovered with a type
// assertion the same way io.WriterTo is:
//
//   - AllocateAll: claim or release all capacity at once, capacity queries
//   - ReallocateInPlace: resize without moving, or fail without side effects
//   - Owns: tell whether a block lies in memory the allocator manages
//
// Decorators return an Allocator whose dynamic type implements exactly the
// capabilities the wrapped allocator supports, so a Proxy over an allocator
// without Owns does not satisfy Owns either.
//
// # Building Blocks
//
// Base cases:
//
//   - region.Region and its variants: bump-pointer allocation with stack
//     discipline (see package alloc/region)
//   - Null: always fails; the terminal leaf of a composition
//
// Decorators:
//
//   - NewProxy: reports every call to a CallbackRef listener
//   - NewChunk: rounds every size up to a multiple of a chunk size
//   - NewFallback: tries a primary allocator, then a secondary one
//   - NewMarker: stamps fresh and freed memory with MarkUninit and MarkFreed
//
// Listeners for NewProxy live in alloc/stats (counters) and alloc/trace
// (structured logging).
//
// # Usage Example
//
//	mem := make([]byte, 4096)
//	var counter stats.Counter
//	a := alloc.NewProxy(region.New(mem), &counter)
//
//	b, err := a.Alloc(alloc.MustLayout(64, 8))
//	if err != nil {
//	    return err
//	}
//	// use b...
//	a.Dealloc(b, alloc.MustLayout(64, 8))
//
//	fmt.Println(counter.NumAllocs(), counter.NumDeallocs()) // 1 1
//
// # Errors
//
// Recoverable failures are returned, never panicked: ErrOutOfMemory when the
// request does not fit, ErrInvalidLayout for an unsupported size or alignment.
// ErrNotInPlace (an ErrOutOfMemory) reports a failed in-place resize.
// ErrPrecondition reports a caller mistake the allocator detected, such as
// growing to a smaller size. Other caller mistakes (freeing a block into the
// wrong allocator, with the wrong layout, or after DeallocateAll) are not
// detected and leave the allocator's bookkeeping undefined.
//
// # Concurrency
//
// Allocators are not safe for concurrent use. The only concurrency-safe pieces
// are stats.AtomicCounter and stats.FilteredAtomicCounter, and their updates
// are not atomic with respect to the allocator call they count.
package alloc
