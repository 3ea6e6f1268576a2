package alloc

// Byte patterns written by the marker decorator. They match the debug heap
// values used by MSVC, so they are easy to spot in a hex dump.
const (
	MarkUninit byte = 0xCD // handed out without zeroing
	MarkFreed  byte = 0xDD // released or cut off by a shrink
)

type marker struct {
	a   Allocator
	all AllocateAll
	rip ReallocateInPlace
	own Owns
}

// NewMarker wraps a so that memory is stamped with a byte pattern at each
// hand-over. Uninitialized allocations and the bytes added by an uninitialized
// grow are filled with MarkUninit. A block is filled with MarkFreed before
// Dealloc, and so is the tail a shrink cuts off, provided the shrink succeeds
// without moving the block. Zeroed variants are passed through unchanged.
//
// Reading a MarkUninit or MarkFreed run in a block is a strong hint of a read
// before write or a use after free. The result implements the same optional
// capabilities as a.
func NewMarker(a Allocator) Allocator {
	m := &marker{a: a}
	var (
		all AllocateAll
		rip ReallocateInPlace
		own Owns
	)
	if v, ok := a.(AllocateAll); ok {
		m.all, all = v, m
	}
	if v, ok := a.(ReallocateInPlace); ok {
		m.rip, rip = v, m
	}
	if v, ok := a.(Owns); ok {
		m.own, own = v, m
	}
	return expose(m, all, rip, own)
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

// markTail stamps the part of nb past old bytes, which a grow just added.
func markTail(nb []byte, old Layout, err error) ([]byte, error) {
	if err == nil && len(nb) > old.size {
		fill(nb[old.size:], MarkUninit)
	}
	return nb, err
}

// markCut stamps the tail of b that a shrink released. It only runs when the
// block stayed put, since a moved block already belongs to the inner allocator.
func markCut(b, nb []byte, new Layout, err error) ([]byte, error) {
	if err == nil && len(b) > new.size && Addr(b) == Addr(nb) {
		fill(b[new.size:], MarkFreed)
	}
	return nb, err
}

func (m *marker) Alloc(l Layout) ([]byte, error) {
	b, err := m.a.Alloc(l)
	if err == nil {
		fill(b, MarkUninit)
	}
	return b, err
}

func (m *marker) AllocZeroed(l Layout) ([]byte, error) { return m.a.AllocZeroed(l) }

func (m *marker) Dealloc(b []byte, l Layout) {
	fill(b[:min(len(b), l.size)], MarkFreed)
	m.a.Dealloc(b, l)
}

func (m *marker) Grow(b []byte, old, new Layout) ([]byte, error) {
	nb, err := m.a.Grow(b, old, new)
	return markTail(nb, old, err)
}

func (m *marker) GrowZeroed(b []byte, old, new Layout) ([]byte, error) {
	return m.a.GrowZeroed(b, old, new)
}

func (m *marker) Shrink(b []byte, old, new Layout) ([]byte, error) {
	nb, err := m.a.Shrink(b, old, new)
	return markCut(b, nb, new, err)
}

func (m *marker) AllocateAll() ([]byte, error) {
	b, err := m.all.AllocateAll()
	if err == nil {
		fill(b, MarkUninit)
	}
	return b, err
}

func (m *marker) AllocateAllZeroed() ([]byte, error) { return m.all.AllocateAllZeroed() }
func (m *marker) DeallocateAll()                     { m.all.DeallocateAll() }
func (m *marker) Capacity() int                      { return m.all.Capacity() }
func (m *marker) CapacityLeft() int                  { return m.all.CapacityLeft() }

func (m *marker) GrowInPlace(b []byte, old, new Layout) ([]byte, error) {
	nb, err := m.rip.GrowInPlace(b, old, new)
	return markTail(nb, old, err)
}

func (m *marker) GrowInPlaceZeroed(b []byte, old, new Layout) ([]byte, error) {
	return m.rip.GrowInPlaceZeroed(b, old, new)
}

func (m *marker) ShrinkInPlace(b []byte, old, new Layout) ([]byte, error) {
	nb, err := m.rip.ShrinkInPlace(b, old, new)
	return markCut(b, nb, new, err)
}

func (m *marker) Owns(b []byte) bool { return m.own.Owns(b) }
