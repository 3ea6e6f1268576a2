package region

import (
	"unsafe"

	"github.com/joshuapare/alloccompose/alloc"
)

// Region is a bump allocator over a byte slice. The region references the
// slice, so its backing array stays alive as long as the region does.
type Region struct {
	bump
}

var (
	_ alloc.Allocator         = (*Region)(nil)
	_ alloc.AllocateAll       = (*Region)(nil)
	_ alloc.ReallocateInPlace = (*Region)(nil)
	_ alloc.Owns              = (*Region)(nil)
)

// New returns an empty region over mem. The region's capacity is len(mem).
func New(mem []byte) *Region {
	return &Region{bump{mem: mem, cur: &cell{}}}
}

func (r *Region) String() string { return r.describe("Region") }

// RawRegion is a bump allocator over memory the Go runtime does not manage,
// such as an mmap'd mapping or a C allocation. The caller must keep the memory
// mapped and must not use blocks from the region once the memory is released.
type RawRegion struct {
	bump
}

var (
	_ alloc.Allocator         = (*RawRegion)(nil)
	_ alloc.AllocateAll       = (*RawRegion)(nil)
	_ alloc.ReallocateInPlace = (*RawRegion)(nil)
	_ alloc.Owns              = (*RawRegion)(nil)
)

// NewRawRegion returns an empty region over the size bytes starting at ptr.
// ptr may be nil only when size is zero.
func NewRawRegion(ptr unsafe.Pointer, size int) *RawRegion {
	return &RawRegion{bump{mem: unsafe.Slice((*byte)(ptr), size), cur: &cell{}}}
}

func (r *RawRegion) String() string { return r.describe("RawRegion") }
