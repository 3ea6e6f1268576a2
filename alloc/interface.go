package alloc

import "unsafe"

// Allocator is the core contract every allocator implements.
//
// Blocks are byte slices. A successful Alloc returns a block of exactly l.Size()
// bytes whose first byte is aligned to l.Align(). The caller owns the block until
// it is handed back to Dealloc, or consumed by Grow or Shrink, which return the
// block that replaces it. Passing a block to an allocator that did not produce
// it, or with a different layout, is undefined caller behaviour.
type Allocator interface {
	Alloc(l Layout) ([]byte, error)
	AllocZeroed(l Layout) ([]byte, error)
	Dealloc(b []byte, l Layout)

	// Grow resizes b from old to new, with new.Size() >= old.Size(). The bytes of
	// b are preserved. The result may live at a different address, in which case
	// b is no longer valid.
	Grow(b []byte, old, new Layout) ([]byte, error)

	// GrowZeroed is like Grow and also zero-fills the bytes past old.Size().
	GrowZeroed(b []byte, old, new Layout) ([]byte, error)

	// Shrink resizes b from old to new, with new.Size() <= old.Size().
	Shrink(b []byte, old, new Layout) ([]byte, error)
}

// AllocateAll is implemented by allocators that manage a fixed capacity and can
// hand it out or reclaim it in one call.
type AllocateAll interface {
	// AllocateAll claims all remaining capacity as a single block.
	AllocateAll() ([]byte, error)
	AllocateAllZeroed() ([]byte, error)

	// DeallocateAll releases every block at once. Blocks handed out before the
	// call must not be used afterwards.
	DeallocateAll()

	Capacity() int
	CapacityLeft() int
}

// ReallocateInPlace is implemented by allocators that can resize a block without
// moving it. Each method either returns a block at the same address or fails
// without side effects, so callers can fall back to Grow or Shrink.
type ReallocateInPlace interface {
	GrowInPlace(b []byte, old, new Layout) ([]byte, error)
	GrowInPlaceZeroed(b []byte, old, new Layout) ([]byte, error)
	ShrinkInPlace(b []byte, old, new Layout) ([]byte, error)
}

// Owns is implemented by allocators that can tell whether a block lies in
// memory they manage. Owns never panics, whatever b is.
type Owns interface {
	Owns(b []byte) bool
}

// OwningAllocator is an Allocator that can also answer Owns.
type OwningAllocator interface {
	Allocator
	Owns
}

// IsEmpty reports whether nothing is currently allocated from a.
func IsEmpty(a AllocateAll) bool {
	return a.CapacityLeft() == a.Capacity()
}

// IsFull reports whether a has no capacity left.
func IsFull(a AllocateAll) bool {
	return a.CapacityLeft() == 0
}

// Addr returns the address of the first byte of b, or 0 for a nil slice.
func Addr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// IsAligned reports whether b starts at a multiple of align.
func IsAligned(b []byte, align int) bool {
	return Addr(b)%uintptr(align) == 0
}
