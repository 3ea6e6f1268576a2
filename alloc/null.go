package alloc

import "fmt"

// Null is an allocator without memory. Every allocation fails with
// ErrOutOfMemory and it owns nothing, which makes it the terminal leaf of a
// fallback chain or a placeholder for a disabled branch of a composition.
//
// Null never hands out a block, so freeing or resizing one is a caller bug:
// Dealloc and DeallocateAll panic, and the resize methods return an error
// wrapping ErrPrecondition.
type Null struct{}

var (
	_ Allocator         = Null{}
	_ AllocateAll       = Null{}
	_ ReallocateInPlace = Null{}
	_ Owns              = Null{}
)

func (Null) Alloc(Layout) ([]byte, error)       { return nil, ErrOutOfMemory }
func (Null) AllocZeroed(Layout) ([]byte, error) { return nil, ErrOutOfMemory }
func (Null) AllocateAll() ([]byte, error)       { return nil, ErrOutOfMemory }
func (Null) AllocateAllZeroed() ([]byte, error) { return nil, ErrOutOfMemory }

func (Null) Dealloc([]byte, Layout) {
	panic(fmt.Errorf("alloc: Null.Dealloc: %w", ErrPrecondition))
}

func (Null) DeallocateAll() {
	panic(fmt.Errorf("alloc: Null.DeallocateAll: %w", ErrPrecondition))
}

func (Null) Grow([]byte, Layout, Layout) ([]byte, error)       { return nil, nullResize("Grow") }
func (Null) GrowZeroed([]byte, Layout, Layout) ([]byte, error) { return nil, nullResize("GrowZeroed") }
func (Null) Shrink([]byte, Layout, Layout) ([]byte, error)     { return nil, nullResize("Shrink") }

func (Null) GrowInPlace([]byte, Layout, Layout) ([]byte, error) {
	return nil, nullResize("GrowInPlace")
}

func (Null) GrowInPlaceZeroed([]byte, Layout, Layout) ([]byte, error) {
	return nil, nullResize("GrowInPlaceZeroed")
}

func (Null) ShrinkInPlace([]byte, Layout, Layout) ([]byte, error) {
	return nil, nullResize("ShrinkInPlace")
}

func (Null) Capacity() int     { return 0 }
func (Null) CapacityLeft() int { return 0 }
func (Null) Owns([]byte) bool  { return false }

func nullResize(op string) error {
	return fmt.Errorf("alloc: Null.%s: %w", op, ErrPrecondition)
}
