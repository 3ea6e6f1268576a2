// Package stats collects allocator statistics through alloc.NewProxy.
//
// Counters are alloc.CallbackRef listeners. They count attempts, not only
// successes: every delegated call increments its operation kind on the
// after-hook, whatever the outcome.
//
//	var c stats.Counter
//	a := alloc.NewProxy(region.New(mem), &c)
//	...
//	fmt.Println(c.Snapshot()) // allocs=3 deallocs=1 grows=0 shrinks=0 owns=2
//
// Counter and FilteredCounter are for a single goroutine. AtomicCounter and
// FilteredAtomicCounter may be shared by concurrent callers; an increment is
// not atomic with the allocator call it records.
//
// The filtered counters additionally break each kind down by how the call was
// made and whether it succeeded. A filter value of None matches every value,
// so summing a filtered count over the non-None values of one filter gives
// the same result as passing None.
package stats
