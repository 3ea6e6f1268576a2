// Package region implements bump-pointer allocators over a caller-supplied block.
//
// A region hands out memory from the front of its block by advancing a single
// offset (the high-water mark). Blocks are freed in stack order: releasing the
// block that ends at the offset moves the offset back to its start, and
// releasing any other block is a no-op that leaks it until DeallocateAll.
// Padding skipped to align a block is reclaimed only by DeallocateAll.
//
//	capacity 64, align 8
//	Alloc(20)   -> [0, 20), offset 24 (requests are padded to their alignment)
//	Alloc(50)   -> ErrOutOfMemory, 24+50 > 64
//	Dealloc(20) -> offset 0
//	Alloc(50)   -> [0, 50), offset 56
//
// The variants differ only in who owns the block and where the offset lives:
//
//   - RawRegion: memory the Go runtime does not manage (mmap, cgo)
//   - Region: a []byte; the region keeps it reachable
//   - SharedRegion: clones share one offset; the block is dropped with the last handle
//   - IntrusiveRegion: the offset is stored in a header at the start of the block
//
// Every variant implements alloc.Allocator, alloc.AllocateAll,
// alloc.ReallocateInPlace and alloc.Owns. None of them is safe for concurrent
// use.
package region
