package alloc

// GrowFallback grows b by allocating a new block from dst, copying the contents
// of b and releasing b to src. Allocators use it with src == dst when an
// in-place grow is not possible; Fallback uses it to move a block between its
// primary and secondary allocators. On error b is left untouched.
func GrowFallback(src, dst Allocator, b []byte, old, new Layout, zeroed bool) ([]byte, error) {
	if err := CheckGrow(old, new); err != nil {
		return nil, err
	}
	var (
		nb  []byte
		err error
	)
	if zeroed {
		nb, err = dst.AllocZeroed(new)
	} else {
		nb, err = dst.Alloc(new)
	}
	if err != nil {
		return nil, err
	}
	copy(nb, b[:min(len(b), old.size)])
	src.Dealloc(b, old)
	return nb, nil
}

// ShrinkFallback is the moving counterpart of an in-place shrink. It keeps the
// first new.Size() bytes of b.
func ShrinkFallback(src, dst Allocator, b []byte, old, new Layout) ([]byte, error) {
	if err := CheckShrink(old, new); err != nil {
		return nil, err
	}
	nb, err := dst.Alloc(new)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	src.Dealloc(b, old)
	return nb, nil
}
