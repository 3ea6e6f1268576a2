package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory indicates that the allocator cannot satisfy the request with its
	// remaining capacity. Callers compose fallbacks on it.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrInvalidLayout indicates an unsupported size or alignment.
	ErrInvalidLayout = errors.New("alloc: invalid layout")

	// ErrPrecondition indicates a caller contract breach that the allocator detected,
	// such as growing to a smaller size or freeing into Null.
	ErrPrecondition = errors.New("alloc: precondition violation")

	// ErrNotInPlace indicates that a block cannot be resized without moving it.
	// It matches ErrOutOfMemory under errors.Is.
	ErrNotInPlace = fmt.Errorf("alloc: cannot resize in place: %w", ErrOutOfMemory)

	// ErrInvalidChunkSize indicates a chunk decorator configured with a non-positive size.
	ErrInvalidChunkSize = fmt.Errorf("alloc: chunk size must be positive: %w", ErrInvalidLayout)
)

// CheckGrow returns an error wrapping ErrPrecondition when new is smaller than old.
func CheckGrow(old, new Layout) error {
	if new.size < old.size {
		return fmt.Errorf("grow from %d to %d bytes: %w", old.size, new.size, ErrPrecondition)
	}
	return nil
}

// CheckShrink returns an error wrapping ErrPrecondition when new is larger than old.
func CheckShrink(old, new Layout) error {
	if new.size > old.size {
		return fmt.Errorf("shrink from %d to %d bytes: %w", old.size, new.size, ErrPrecondition)
	}
	return nil
}
