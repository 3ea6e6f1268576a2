package alloc

import (
	"fmt"

	"github.com/joshuapare/alloccompose/internal/buf"
)

// chunk rounds every request up to a multiple of size before delegating.
type chunk struct {
	a    Allocator
	rip  ReallocateInPlace
	own  Owns
	size int
}

// NewChunk wraps a so that every layout it forwards has its size rounded up to
// the next multiple of size, with the alignment unchanged. Callers still see
// blocks of the size they asked for; the rounded tail stays in the block's
// capacity, which lets Grow and Shrink complete without touching a while the
// new size rounds to the same number of chunks.
//
// The result always implements ReallocateInPlace and implements Owns when a
// does. It fails with ErrInvalidChunkSize when size is not positive.
func NewChunk(a Allocator, size int) (Allocator, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size %d: %w", size, ErrInvalidChunkSize)
	}
	c := &chunk{a: a, size: size}
	c.rip, _ = a.(ReallocateInPlace)
	var own Owns
	if v, ok := a.(Owns); ok {
		c.own, own = v, c
	}
	return expose(c, nil, c, own), nil
}

func (c *chunk) round(l Layout) (Layout, error) {
	n, ok := buf.RoundUpMultiple(l.size, c.size)
	if !ok {
		return Layout{}, fmt.Errorf("size %d rounded to chunk %d overflows: %w", l.size, c.size, ErrInvalidLayout)
	}
	return NewLayout(n, l.align)
}

// sameChunks reports whether b can be resized to new without involving the
// inner allocator: the rounded sizes match and b satisfies the new alignment.
func (c *chunk) sameChunks(b []byte, ro, rn Layout) bool {
	return ro.size == rn.size && cap(b) >= rn.size && IsAligned(b, rn.align)
}

// full reslices b to n bytes, which the inner allocator handed out as capacity.
func full(b []byte, n int) []byte {
	if n <= cap(b) {
		return b[:n]
	}
	return b
}

func (c *chunk) Alloc(l Layout) ([]byte, error) {
	rl, err := c.round(l)
	if err != nil {
		return nil, err
	}
	b, err := c.a.Alloc(rl)
	if err != nil {
		return nil, err
	}
	return b[:l.size], nil
}

func (c *chunk) AllocZeroed(l Layout) ([]byte, error) {
	rl, err := c.round(l)
	if err != nil {
		return nil, err
	}
	b, err := c.a.AllocZeroed(rl)
	if err != nil {
		return nil, err
	}
	return b[:l.size], nil
}

func (c *chunk) Dealloc(b []byte, l Layout) {
	rl, err := c.round(l)
	if err != nil {
		// No allocation of this layout can have succeeded.
		return
	}
	c.a.Dealloc(full(b, rl.size), rl)
}

func (c *chunk) resizeLayouts(old, new Layout) (ro, rn Layout, err error) {
	if ro, err = c.round(old); err != nil {
		return Layout{}, Layout{}, err
	}
	if rn, err = c.round(new); err != nil {
		return Layout{}, Layout{}, err
	}
	return ro, rn, nil
}

func (c *chunk) grow(b []byte, old, new Layout, zeroed bool) ([]byte, error) {
	if err := CheckGrow(old, new); err != nil {
		return nil, err
	}
	ro, rn, err := c.resizeLayouts(old, new)
	if err != nil {
		return nil, err
	}
	if c.sameChunks(b, ro, rn) {
		nb := b[:new.size]
		if zeroed {
			clear(nb[old.size:])
		}
		return nb, nil
	}
	var nb []byte
	if zeroed {
		nb, err = c.a.GrowZeroed(full(b, ro.size), ro, rn)
	} else {
		nb, err = c.a.Grow(full(b, ro.size), ro, rn)
	}
	if err != nil {
		return nil, err
	}
	if zeroed {
		// The inner allocator only zeroes past the rounded old size.
		clear(nb[old.size:ro.size])
	}
	return nb[:new.size], nil
}

func (c *chunk) Grow(b []byte, old, new Layout) ([]byte, error) {
	return c.grow(b, old, new, false)
}

func (c *chunk) GrowZeroed(b []byte, old, new Layout) ([]byte, error) {
	return c.grow(b, old, new, true)
}

func (c *chunk) Shrink(b []byte, old, new Layout) ([]byte, error) {
	if err := CheckShrink(old, new); err != nil {
		return nil, err
	}
	ro, rn, err := c.resizeLayouts(old, new)
	if err != nil {
		return nil, err
	}
	if c.sameChunks(b, ro, rn) {
		return b[:new.size], nil
	}
	nb, err := c.a.Shrink(full(b, ro.size), ro, rn)
	if err != nil {
		return nil, err
	}
	return nb[:new.size], nil
}

func (c *chunk) growInPlace(b []byte, old, new Layout, zeroed bool) ([]byte, error) {
	if err := CheckGrow(old, new); err != nil {
		return nil, err
	}
	ro, rn, err := c.resizeLayouts(old, new)
	if err != nil {
		return nil, err
	}
	if c.sameChunks(b, ro, rn) {
		nb := b[:new.size]
		if zeroed {
			clear(nb[old.size:])
		}
		return nb, nil
	}
	if c.rip == nil {
		return nil, ErrNotInPlace
	}
	var nb []byte
	if zeroed {
		nb, err = c.rip.GrowInPlaceZeroed(full(b, ro.size), ro, rn)
	} else {
		nb, err = c.rip.GrowInPlace(full(b, ro.size), ro, rn)
	}
	if err != nil {
		return nil, err
	}
	if zeroed {
		clear(nb[old.size:ro.size])
	}
	return nb[:new.size], nil
}

func (c *chunk) GrowInPlace(b []byte, old, new Layout) ([]byte, error) {
	return c.growInPlace(b, old, new, false)
}

func (c *chunk) GrowInPlaceZeroed(b []byte, old, new Layout) ([]byte, error) {
	return c.growInPlace(b, old, new, true)
}

func (c *chunk) ShrinkInPlace(b []byte, old, new Layout) ([]byte, error) {
	if err := CheckShrink(old, new); err != nil {
		return nil, err
	}
	ro, rn, err := c.resizeLayouts(old, new)
	if err != nil {
		return nil, err
	}
	if c.sameChunks(b, ro, rn) {
		return b[:new.size], nil
	}
	if c.rip == nil {
		return nil, ErrNotInPlace
	}
	nb, err := c.rip.ShrinkInPlace(full(b, ro.size), ro, rn)
	if err != nil {
		return nil, err
	}
	return nb[:new.size], nil
}

func (c *chunk) Owns(b []byte) bool {
	return c.own.Owns(b)
}
