package stats

import "github.com/joshuapare/alloccompose/alloc"

// counter implements the plain hooks over any slot store S.
type counter[S any, PS interface {
	*S
	store
}] struct {
	alloc.NopCallbacks
	s S
}

func (c *counter[S, PS]) slots() PS { return PS(&c.s) }

func (c *counter[S, PS]) AfterAlloc(alloc.Layout, []byte, error) {
	c.slots().inc(statAllocs)
}

func (c *counter[S, PS]) AfterAllocZeroed(alloc.Layout, []byte, error) {
	c.slots().inc(statAllocs)
}

func (c *counter[S, PS]) AfterAllocateAll([]byte, error) {
	c.slots().inc(statAllocs)
}

func (c *counter[S, PS]) AfterAllocateAllZeroed([]byte, error) {
	c.slots().inc(statAllocs)
}

func (c *counter[S, PS]) AfterDealloc([]byte, alloc.Layout) {
	c.slots().inc(statDeallocs)
}

func (c *counter[S, PS]) AfterDeallocateAll() {
	c.slots().inc(statDeallocs)
}

func (c *counter[S, PS]) AfterGrow([]byte, alloc.Layout, alloc.Layout, []byte, error) {
	c.slots().inc(statGrows)
}

func (c *counter[S, PS]) AfterGrowZeroed([]byte, alloc.Layout, alloc.Layout, []byte, error) {
	c.slots().inc(statGrows)
}

func (c *counter[S, PS]) AfterGrowInPlace([]byte, alloc.Layout, alloc.Layout, []byte, error) {
	c.slots().inc(statGrows)
}

func (c *counter[S, PS]) AfterGrowInPlaceZeroed([]byte, alloc.Layout, alloc.Layout, []byte, error) {
	c.slots().inc(statGrows)
}

func (c *counter[S, PS]) AfterShrink([]byte, alloc.Layout, alloc.Layout, []byte, error) {
	c.slots().inc(statShrinks)
}

func (c *counter[S, PS]) AfterShrinkInPlace([]byte, alloc.Layout, alloc.Layout, []byte, error) {
	c.slots().inc(statShrinks)
}

func (c *counter[S, PS]) AfterOwns([]byte, bool) {
	c.slots().inc(statOwns)
}

// NumAllocs returns the number of Alloc, AllocZeroed, AllocateAll and
// AllocateAllZeroed calls.
func (c *counter[S, PS]) NumAllocs() uint64 { return c.slots().get(statAllocs) }

// NumDeallocs returns the number of Dealloc and DeallocateAll calls.
func (c *counter[S, PS]) NumDeallocs() uint64 { return c.slots().get(statDeallocs) }

// NumGrows returns the number of grow calls, moving or in place.
func (c *counter[S, PS]) NumGrows() uint64 { return c.slots().get(statGrows) }

// NumShrinks returns the number of shrink calls, moving or in place.
func (c *counter[S, PS]) NumShrinks() uint64 { return c.slots().get(statShrinks) }

// NumOwns returns the number of Owns calls.
func (c *counter[S, PS]) NumOwns() uint64 { return c.slots().get(statOwns) }

// Snapshot returns the current counts as a comparable value.
func (c *counter[S, PS]) Snapshot() Stats {
	var st Stats
	for i := range st.n {
		st.n[i] = c.slots().get(i)
	}
	return st
}

// Counter counts calls per operation kind. It is not safe for concurrent use;
// see AtomicCounter. The zero value is ready to use. Pass a *Counter to
// alloc.NewProxy.
type Counter struct {
	counter[counts, *counts]
}

// AtomicCounter is a Counter whose increments are atomic, for a proxy shared
// between goroutines. The zero value is ready to use.
type AtomicCounter struct {
	counter[atomicCounts, *atomicCounts]
}

var (
	_ alloc.CallbackRef = (*Counter)(nil)
	_ alloc.CallbackRef = (*AtomicCounter)(nil)
)

// Stats is a point-in-time copy of a Counter or AtomicCounter. Two snapshots
// are equal when every count matches, whichever counter type produced them.
type Stats struct {
	n counts
}

func (s Stats) NumAllocs() uint64   { return s.n[statAllocs] }
func (s Stats) NumDeallocs() uint64 { return s.n[statDeallocs] }
func (s Stats) NumGrows() uint64    { return s.n[statGrows] }
func (s Stats) NumShrinks() uint64  { return s.n[statShrinks] }
func (s Stats) NumOwns() uint64     { return s.n[statOwns] }
