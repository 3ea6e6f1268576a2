package region

import (
	"fmt"

	"github.com/joshuapare/alloccompose/alloc"
	"github.com/joshuapare/alloccompose/internal/buf"
)

// cursor stores a region's offset.
type cursor interface {
	load() int
	store(off int)
}

// cell keeps the offset in ordinary memory.
type cell struct{ off int }

func (c *cell) load() int     { return c.off }
func (c *cell) store(off int) { c.off = off }

// bump is the allocator shared by every region variant. All bookkeeping is
// the offset: [0, offset) of mem is in use, [offset, len(mem)) is free.
type bump struct {
	mem []byte
	cur cursor
}

var (
	_ alloc.Allocator         = (*bump)(nil)
	_ alloc.AllocateAll       = (*bump)(nil)
	_ alloc.ReallocateInPlace = (*bump)(nil)
	_ alloc.Owns              = (*bump)(nil)
)

func (r *bump) base() uintptr { return alloc.Addr(r.mem) }

// offsetOf returns the offset of b within mem, or false when b does not start
// inside the region.
func (r *bump) offsetOf(b []byte) (int, bool) {
	addr, base := alloc.Addr(b), r.base()
	if len(r.mem) == 0 || addr < base || addr >= base+uintptr(len(r.mem)) {
		return 0, false
	}
	return int(addr - base), true
}

// isTop reports whether the block at start with layout l ends at the offset.
func (r *bump) isTop(start int, l alloc.Layout) bool {
	return start+l.PaddedSize() == r.cur.load()
}

// block returns mem[start:start+n] with its capacity clipped to n, so that
// appending to a block can never write into its neighbour.
func (r *bump) block(start, n int) []byte {
	return r.mem[start : start+n : start+n]
}

// Capacity returns the number of bytes the region can hand out in total.
func (r *bump) Capacity() int { return len(r.mem) }

// CapacityLeft returns the number of bytes past the offset.
func (r *bump) CapacityLeft() int { return len(r.mem) - r.cur.load() }

// Alloc carves a block for l out of the free space, padding it to l's
// alignment. It fails with alloc.ErrOutOfMemory when the padded block does not
// fit.
func (r *bump) Alloc(l alloc.Layout) ([]byte, error) {
	base := r.base()
	start := int(buf.AlignAddr(base+uintptr(r.cur.load()), uintptr(l.Align())) - base)
	if !buf.Fits(start, l.PaddedSize(), len(r.mem)) {
		return nil, fmt.Errorf("region: %d bytes at align %d, %d left: %w",
			l.Size(), l.Align(), r.CapacityLeft(), alloc.ErrOutOfMemory)
	}
	r.cur.store(start + l.PaddedSize())
	return r.block(start, l.Size()), nil
}

// AllocZeroed is Alloc with the block cleared.
func (r *bump) AllocZeroed(l alloc.Layout) ([]byte, error) {
	b, err := r.Alloc(l)
	if err != nil {
		return nil, err
	}
	clear(b)
	return b, nil
}

// Dealloc releases b if it is the most recent live block. Any other block is
// left in place until DeallocateAll.
func (r *bump) Dealloc(b []byte, l alloc.Layout) {
	if start, ok := r.offsetOf(b); ok && r.isTop(start, l) {
		r.cur.store(start)
	}
}

func (r *bump) growInPlace(b []byte, old, new alloc.Layout, zeroed bool) ([]byte, error) {
	if err := alloc.CheckGrow(old, new); err != nil {
		return nil, err
	}
	start, ok := r.offsetOf(b)
	if !ok || !r.isTop(start, old) || !alloc.IsAligned(b, new.Align()) ||
		!buf.Fits(start, new.PaddedSize(), len(r.mem)) {
		return nil, alloc.ErrNotInPlace
	}
	r.cur.store(start + new.PaddedSize())
	nb := r.block(start, new.Size())
	if zeroed {
		clear(nb[old.Size():])
	}
	return nb, nil
}

// GrowInPlace extends b if it is the most recent live block and the new size
// fits. It fails with alloc.ErrNotInPlace otherwise.
func (r *bump) GrowInPlace(b []byte, old, new alloc.Layout) ([]byte, error) {
	return r.growInPlace(b, old, new, false)
}

// GrowInPlaceZeroed is GrowInPlace with the added bytes cleared.
func (r *bump) GrowInPlaceZeroed(b []byte, old, new alloc.Layout) ([]byte, error) {
	return r.growInPlace(b, old, new, true)
}

// ShrinkInPlace truncates b if it is the most recent live block, giving the
// freed tail back to the region. It fails with alloc.ErrNotInPlace otherwise.
func (r *bump) ShrinkInPlace(b []byte, old, new alloc.Layout) ([]byte, error) {
	if err := alloc.CheckShrink(old, new); err != nil {
		return nil, err
	}
	start, ok := r.offsetOf(b)
	if !ok || !r.isTop(start, old) || !alloc.IsAligned(b, new.Align()) {
		return nil, alloc.ErrNotInPlace
	}
	r.cur.store(start + new.PaddedSize())
	return r.block(start, new.Size()), nil
}

func (r *bump) grow(b []byte, old, new alloc.Layout, zeroed bool) ([]byte, error) {
	if err := alloc.CheckGrow(old, new); err != nil {
		return nil, err
	}
	if nb, err := r.growInPlace(b, old, new, zeroed); err == nil {
		return nb, nil
	}
	return alloc.GrowFallback(r, r, b, old, new, zeroed)
}

// Grow extends b in place when possible and otherwise moves it to a new block.
func (r *bump) Grow(b []byte, old, new alloc.Layout) ([]byte, error) {
	return r.grow(b, old, new, false)
}

// GrowZeroed is Grow with the added bytes cleared.
func (r *bump) GrowZeroed(b []byte, old, new alloc.Layout) ([]byte, error) {
	return r.grow(b, old, new, true)
}

// Shrink truncates b in place when possible and otherwise copies it to a new
// block.
func (r *bump) Shrink(b []byte, old, new alloc.Layout) ([]byte, error) {
	if err := alloc.CheckShrink(old, new); err != nil {
		return nil, err
	}
	if nb, err := r.ShrinkInPlace(b, old, new); err == nil {
		return nb, nil
	}
	return alloc.ShrinkFallback(r, r, b, old, new)
}

func (r *bump) allocateAll() ([]byte, error) {
	off := r.cur.load()
	if off >= len(r.mem) {
		return nil, fmt.Errorf("region: nothing left to allocate: %w", alloc.ErrOutOfMemory)
	}
	r.cur.store(len(r.mem))
	return r.block(off, len(r.mem)-off), nil
}

// AllocateAll claims everything past the offset as one block with alignment 1.
func (r *bump) AllocateAll() ([]byte, error) {
	return r.allocateAll()
}

// AllocateAllZeroed is AllocateAll with the block cleared.
func (r *bump) AllocateAllZeroed() ([]byte, error) {
	b, err := r.allocateAll()
	if err != nil {
		return nil, err
	}
	clear(b)
	return b, nil
}

// DeallocateAll resets the offset to zero. Blocks handed out earlier must not
// be used afterwards.
func (r *bump) DeallocateAll() { r.cur.store(0) }

// Owns reports whether b starts inside the region's block.
func (r *bump) Owns(b []byte) bool {
	_, ok := r.offsetOf(b)
	return ok
}

func (r *bump) describe(kind string) string {
	return fmt.Sprintf("%s{capacity: %d, capacity_left: %d}", kind, r.Capacity(), r.CapacityLeft())
}
