package alloc

// proxy delegates every call to a and reports it to cb. It never changes the
// outcome of a call.
type proxy struct {
	a   Allocator
	all AllocateAll
	rip ReallocateInPlace
	own Owns
	cb  CallbackRef
}

// NewProxy wraps a so that every delegated call is reported to cb: the
// matching Before hook runs first, then the call on a, then the After hook
// with the outcome. The result implements the same optional capabilities
// (AllocateAll, ReallocateInPlace, Owns) as a.
//
// Capacity and CapacityLeft are pure queries and are forwarded without hooks.
func NewProxy(a Allocator, cb CallbackRef) Allocator {
	p := &proxy{a: a, cb: cb}
	var (
		all AllocateAll
		rip ReallocateInPlace
		own Owns
	)
	if v, ok := a.(AllocateAll); ok {
		p.all, all = v, p
	}
	if v, ok := a.(ReallocateInPlace); ok {
		p.rip, rip = v, p
	}
	if v, ok := a.(Owns); ok {
		p.own, own = v, p
	}
	return expose(p, all, rip, own)
}

func (p *proxy) Alloc(l Layout) ([]byte, error) {
	p.cb.BeforeAlloc(l)
	b, err := p.a.Alloc(l)
	p.cb.AfterAlloc(l, b, err)
	return b, err
}

func (p *proxy) AllocZeroed(l Layout) ([]byte, error) {
	p.cb.BeforeAllocZeroed(l)
	b, err := p.a.AllocZeroed(l)
	p.cb.AfterAllocZeroed(l, b, err)
	return b, err
}

func (p *proxy) Dealloc(b []byte, l Layout) {
	p.cb.BeforeDealloc(b, l)
	p.a.Dealloc(b, l)
	p.cb.AfterDealloc(b, l)
}

func (p *proxy) Grow(b []byte, old, new Layout) ([]byte, error) {
	p.cb.BeforeGrow(b, old, new)
	nb, err := p.a.Grow(b, old, new)
	p.cb.AfterGrow(b, old, new, nb, err)
	return nb, err
}

func (p *proxy) GrowZeroed(b []byte, old, new Layout) ([]byte, error) {
	p.cb.BeforeGrowZeroed(b, old, new)
	nb, err := p.a.GrowZeroed(b, old, new)
	p.cb.AfterGrowZeroed(b, old, new, nb, err)
	return nb, err
}

func (p *proxy) Shrink(b []byte, old, new Layout) ([]byte, error) {
	p.cb.BeforeShrink(b, old, new)
	nb, err := p.a.Shrink(b, old, new)
	p.cb.AfterShrink(b, old, new, nb, err)
	return nb, err
}

func (p *proxy) AllocateAll() ([]byte, error) {
	p.cb.BeforeAllocateAll()
	b, err := p.all.AllocateAll()
	p.cb.AfterAllocateAll(b, err)
	return b, err
}

func (p *proxy) AllocateAllZeroed() ([]byte, error) {
	p.cb.BeforeAllocateAllZeroed()
	b, err := p.all.AllocateAllZeroed()
	p.cb.AfterAllocateAllZeroed(b, err)
	return b, err
}

func (p *proxy) DeallocateAll() {
	p.cb.BeforeDeallocateAll()
	p.all.DeallocateAll()
	p.cb.AfterDeallocateAll()
}

func (p *proxy) Capacity() int     { return p.all.Capacity() }
func (p *proxy) CapacityLeft() int { return p.all.CapacityLeft() }

func (p *proxy) GrowInPlace(b []byte, old, new Layout) ([]byte, error) {
	p.cb.BeforeGrowInPlace(b, old, new)
	nb, err := p.rip.GrowInPlace(b, old, new)
	p.cb.AfterGrowInPlace(b, old, new, nb, err)
	return nb, err
}

func (p *proxy) GrowInPlaceZeroed(b []byte, old, new Layout) ([]byte, error) {
	p.cb.BeforeGrowInPlaceZeroed(b, old, new)
	nb, err := p.rip.GrowInPlaceZeroed(b, old, new)
	p.cb.AfterGrowInPlaceZeroed(b, old, new, nb, err)
	return nb, err
}

func (p *proxy) ShrinkInPlace(b []byte, old, new Layout) ([]byte, error) {
	p.cb.BeforeShrinkInPlace(b, old, new)
	nb, err := p.rip.ShrinkInPlace(b, old, new)
	p.cb.AfterShrinkInPlace(b, old, new, nb, err)
	return nb, err
}

func (p *proxy) Owns(b []byte) bool {
	p.cb.BeforeOwns(b)
	owned := p.own.Owns(b)
	p.cb.AfterOwns(b, owned)
	return owned
}
