package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/alloccompose/internal/buf"
)

// Layout describes a memory request: a size in bytes and a power-of-two alignment.
// The zero Layout is not valid; build one with NewLayout, MustLayout or LayoutOf.
type Layout struct {
	size  int
	align int
}

// NewLayout validates size and align. It fails with ErrInvalidLayout when size is
// negative, align is not a power of two, or size rounded up to align overflows int.
func NewLayout(size, align int) (Layout, error) {
	if size < 0 {
		return Layout{}, fmt.Errorf("size %d: %w", size, ErrInvalidLayout)
	}
	if !buf.IsPowerOfTwo(align) {
		return Layout{}, fmt.Errorf("align %d is not a power of two: %w", align, ErrInvalidLayout)
	}
	if _, ok := buf.AlignUp(size, align); !ok {
		return Layout{}, fmt.Errorf("size %d padded to %d overflows: %w", size, align, ErrInvalidLayout)
	}
	return Layout{size: size, align: align}, nil
}

// MustLayout is like NewLayout but panics on an invalid layout.
func MustLayout(size, align int) Layout {
	l, err := NewLayout(size, align)
	if err != nil {
		panic(err)
	}
	return l
}

// LayoutOf returns the layout of a single value of type T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{size: int(unsafe.Sizeof(zero)), align: int(unsafe.Alignof(zero))}
}

// Size returns the requested size in bytes.
func (l Layout) Size() int { return l.size }

// Align returns the requested alignment in bytes.
func (l Layout) Align() int { return l.align }

// PaddedSize returns Size rounded up to a multiple of Align.
func (l Layout) PaddedSize() int {
	n, _ := buf.AlignUp(l.size, l.align)
	return n
}

// WithSize returns a layout with the same alignment and size n.
func (l Layout) WithSize(n int) (Layout, error) {
	return NewLayout(n, l.align)
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.size, l.align)
}
