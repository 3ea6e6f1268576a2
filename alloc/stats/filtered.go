package stats

import "github.com/joshuapare/alloccompose/alloc"

// Classification indices used by the slot helpers.
const (
	uninit, zeroed   = 0, 1
	mayMove, inPlace = 0, 1
)

func allocSlot(init int, err error) int {
	return fAllocs + init*2 + outcome(err)
}

func growSlot(placement, init int, err error) int {
	return fGrows + placement*4 + init*2 + outcome(err)
}

func shrinkSlot(placement int, err error) int {
	return fShrinks + placement*2 + outcome(err)
}

func ownsSlot(owned bool) int {
	if owned {
		return fOwns
	}
	return fOwns + 1
}

func sumAllocs(r reader, init AllocInitFilter, result ResultFilter) uint64 {
	var n uint64
	for _, i := range init.indices() {
		for _, o := range result.indices() {
			n += r.get(fAllocs + i*2 + o)
		}
	}
	return n
}

func sumGrows(r reader, placement ReallocPlacementFilter, init AllocInitFilter, result ResultFilter) uint64 {
	var n uint64
	for _, p := range placement.indices() {
		for _, i := range init.indices() {
			for _, o := range result.indices() {
				n += r.get(fGrows + p*4 + i*2 + o)
			}
		}
	}
	return n
}

func sumShrinks(r reader, placement ReallocPlacementFilter, result ResultFilter) uint64 {
	var n uint64
	for _, p := range placement.indices() {
		for _, o := range result.indices() {
			n += r.get(fShrinks + p*2 + o)
		}
	}
	return n
}

func sumOwns(r reader, result ResultFilter) uint64 {
	var n uint64
	for _, o := range result.indices() {
		n += r.get(fOwns + o)
	}
	return n
}

// filtered implements the classifying hooks over any slot store S.
type filtered[S any, PS interface {
	*S
	store
}] struct {
	alloc.NopCallbacks
	s S
}

func (c *filtered[S, PS]) slots() PS { return PS(&c.s) }

func (c *filtered[S, PS]) AfterAlloc(_ alloc.Layout, _ []byte, err error) {
	c.slots().inc(allocSlot(uninit, err))
}

func (c *filtered[S, PS]) AfterAllocZeroed(_ alloc.Layout, _ []byte, err error) {
	c.slots().inc(allocSlot(zeroed, err))
}

func (c *filtered[S, PS]) AfterAllocateAll(_ []byte, err error) {
	c.slots().inc(allocSlot(uninit, err))
}

func (c *filtered[S, PS]) AfterAllocateAllZeroed(_ []byte, err error) {
	c.slots().inc(allocSlot(zeroed, err))
}

func (c *filtered[S, PS]) AfterDealloc([]byte, alloc.Layout) {
	c.slots().inc(fDeallocs)
}

func (c *filtered[S, PS]) AfterDeallocateAll() {
	c.slots().inc(fDeallocs)
}

func (c *filtered[S, PS]) AfterGrow(_ []byte, _, _ alloc.Layout, _ []byte, err error) {
	c.slots().inc(growSlot(mayMove, uninit, err))
}

func (c *filtered[S, PS]) AfterGrowZeroed(_ []byte, _, _ alloc.Layout, _ []byte, err error) {
	c.slots().inc(growSlot(mayMove, zeroed, err))
}

func (c *filtered[S, PS]) AfterGrowInPlace(_ []byte, _, _ alloc.Layout, _ []byte, err error) {
	c.slots().inc(growSlot(inPlace, uninit, err))
}

func (c *filtered[S, PS]) AfterGrowInPlaceZeroed(_ []byte, _, _ alloc.Layout, _ []byte, err error) {
	c.slots().inc(growSlot(inPlace, zeroed, err))
}

func (c *filtered[S, PS]) AfterShrink(_ []byte, _, _ alloc.Layout, _ []byte, err error) {
	c.slots().inc(shrinkSlot(mayMove, err))
}

func (c *filtered[S, PS]) AfterShrinkInPlace(_ []byte, _, _ alloc.Layout, _ []byte, err error) {
	c.slots().inc(shrinkSlot(inPlace, err))
}

func (c *filtered[S, PS]) AfterOwns(_ []byte, owned bool) {
	c.slots().inc(ownsSlot(owned))
}

// NumAllocs returns the number of allocation calls of any kind.
func (c *filtered[S, PS]) NumAllocs() uint64 {
	return sumAllocs(c.slots(), AllocInitNone, ResultNone)
}

// NumAllocsFilter returns the number of allocation calls matching init and result.
func (c *filtered[S, PS]) NumAllocsFilter(init AllocInitFilter, result ResultFilter) uint64 {
	return sumAllocs(c.slots(), init, result)
}

// NumDeallocs returns the number of Dealloc and DeallocateAll calls.
func (c *filtered[S, PS]) NumDeallocs() uint64 {
	return c.slots().get(fDeallocs)
}

// NumGrows returns the number of grow calls of any kind.
func (c *filtered[S, PS]) NumGrows() uint64 {
	return sumGrows(c.slots(), PlacementNone, AllocInitNone, ResultNone)
}

// NumGrowsFilter returns the number of grow calls matching placement, init and result.
func (c *filtered[S, PS]) NumGrowsFilter(placement ReallocPlacementFilter, init AllocInitFilter, result ResultFilter) uint64 {
	return sumGrows(c.slots(), placement, init, result)
}

// NumShrinks returns the number of shrink calls of any kind.
func (c *filtered[S, PS]) NumShrinks() uint64 {
	return sumShrinks(c.slots(), PlacementNone, ResultNone)
}

// NumShrinksFilter returns the number of shrink calls matching placement and result.
func (c *filtered[S, PS]) NumShrinksFilter(placement ReallocPlacementFilter, result ResultFilter) uint64 {
	return sumShrinks(c.slots(), placement, result)
}

// NumOwns returns the number of Owns calls.
func (c *filtered[S, PS]) NumOwns() uint64 {
	return sumOwns(c.slots(), ResultNone)
}

// NumOwnsFilter returns the number of Owns calls matching result, where
// ResultOk counts owned blocks and ResultErr foreign ones.
func (c *filtered[S, PS]) NumOwnsFilter(result ResultFilter) uint64 {
	return sumOwns(c.slots(), result)
}

// Snapshot returns the current counts as a comparable value.
func (c *filtered[S, PS]) Snapshot() FilteredStats {
	var st FilteredStats
	for i := range st.n {
		st.n[i] = c.slots().get(i)
	}
	return st
}

// FilteredCounter counts calls per operation kind, classification and
// outcome. It is not safe for concurrent use; see FilteredAtomicCounter. The
// zero value is ready to use.
type FilteredCounter struct {
	filtered[filteredCounts, *filteredCounts]
}

// FilteredAtomicCounter is a FilteredCounter whose increments are atomic.
type FilteredAtomicCounter struct {
	filtered[atomicFilteredCounts, *atomicFilteredCounts]
}

var (
	_ alloc.CallbackRef = (*FilteredCounter)(nil)
	_ alloc.CallbackRef = (*FilteredAtomicCounter)(nil)
)

// FilteredStats is a point-in-time copy of a FilteredCounter or
// FilteredAtomicCounter. Two snapshots are equal when every count matches.
type FilteredStats struct {
	n filteredCounts
}

func (s FilteredStats) get(slot int) uint64 { return s.n[slot] }

func (s FilteredStats) NumAllocs() uint64 { return sumAllocs(s, AllocInitNone, ResultNone) }

func (s FilteredStats) NumAllocsFilter(init AllocInitFilter, result ResultFilter) uint64 {
	return sumAllocs(s, init, result)
}

func (s FilteredStats) NumDeallocs() uint64 { return s.n[fDeallocs] }

func (s FilteredStats) NumGrows() uint64 {
	return sumGrows(s, PlacementNone, AllocInitNone, ResultNone)
}

func (s FilteredStats) NumGrowsFilter(placement ReallocPlacementFilter, init AllocInitFilter, result ResultFilter) uint64 {
	return sumGrows(s, placement, init, result)
}

func (s FilteredStats) NumShrinks() uint64 { return sumShrinks(s, PlacementNone, ResultNone) }

func (s FilteredStats) NumShrinksFilter(placement ReallocPlacementFilter, result ResultFilter) uint64 {
	return sumShrinks(s, placement, result)
}

func (s FilteredStats) NumOwns() uint64 { return sumOwns(s, ResultNone) }

func (s FilteredStats) NumOwnsFilter(result ResultFilter) uint64 { return sumOwns(s, result) }

// Totals drops the breakdown.
func (s FilteredStats) Totals() Stats {
	var st Stats
	st.n[statAllocs] = s.NumAllocs()
	st.n[statDeallocs] = s.NumDeallocs()
	st.n[statGrows] = s.NumGrows()
	st.n[statShrinks] = s.NumShrinks()
	st.n[statOwns] = s.NumOwns()
	return st
}
