package alloc

// fallback serves requests from primary and falls back to secondary.
type fallback struct {
	primary   OwningAllocator
	secondary Allocator
	own       Owns
}

// NewFallback returns an allocator that tries primary first and uses secondary
// when primary fails. Blocks are routed back to the allocator that produced
// them with primary.Owns. A block in primary that cannot grow there is moved
// into secondary.
//
// The result implements Owns only if secondary does.
func NewFallback(primary OwningAllocator, secondary Allocator) Allocator {
	f := &fallback{primary: primary, secondary: secondary}
	var own Owns
	if v, ok := secondary.(Owns); ok {
		f.own, own = v, f
	}
	return expose(f, nil, nil, own)
}

func (f *fallback) Alloc(l Layout) ([]byte, error) {
	if b, err := f.primary.Alloc(l); err == nil {
		return b, nil
	}
	return f.secondary.Alloc(l)
}

func (f *fallback) AllocZeroed(l Layout) ([]byte, error) {
	if b, err := f.primary.AllocZeroed(l); err == nil {
		return b, nil
	}
	return f.secondary.AllocZeroed(l)
}

func (f *fallback) Dealloc(b []byte, l Layout) {
	if f.primary.Owns(b) {
		f.primary.Dealloc(b, l)
		return
	}
	f.secondary.Dealloc(b, l)
}

func (f *fallback) Grow(b []byte, old, new Layout) ([]byte, error) {
	return f.grow(b, old, new, false)
}

func (f *fallback) GrowZeroed(b []byte, old, new Layout) ([]byte, error) {
	return f.grow(b, old, new, true)
}

func (f *fallback) grow(b []byte, old, new Layout, zeroed bool) ([]byte, error) {
	if err := CheckGrow(old, new); err != nil {
		return nil, err
	}
	if !f.primary.Owns(b) {
		if zeroed {
			return f.secondary.GrowZeroed(b, old, new)
		}
		return f.secondary.Grow(b, old, new)
	}
	var (
		nb  []byte
		err error
	)
	if zeroed {
		nb, err = f.primary.GrowZeroed(b, old, new)
	} else {
		nb, err = f.primary.Grow(b, old, new)
	}
	if err == nil {
		return nb, nil
	}
	return GrowFallback(f.primary, f.secondary, b, old, new, zeroed)
}

func (f *fallback) Shrink(b []byte, old, new Layout) ([]byte, error) {
	if err := CheckShrink(old, new); err != nil {
		return nil, err
	}
	if !f.primary.Owns(b) {
		return f.secondary.Shrink(b, old, new)
	}
	if nb, err := f.primary.Shrink(b, old, new); err == nil {
		return nb, nil
	}
	return ShrinkFallback(f.primary, f.secondary, b, old, new)
}

func (f *fallback) Owns(b []byte) bool {
	return f.primary.Owns(b) || f.own.Owns(b)
}
