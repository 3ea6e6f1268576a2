package testutil

import (
	"fmt"
	"testing"

	"github.com/joshuapare/alloccompose/alloc"
	"github.com/stretchr/testify/assert"
)

// Tracker is a listener for alloc.NewProxy that remembers every live block and
// fails the test when a block is freed or resized with a layout it was not
// allocated with, or when it was never allocated at all. It is the checked
// mode for the caller preconditions the allocators themselves do not verify.
//
// Zero-length blocks carry no address of their own and are not tracked.
type Tracker struct {
	alloc.NopCallbacks

	t    testing.TB
	live map[uintptr]alloc.Layout
}

// NewTracker returns a tracker that reports violations to t.
func NewTracker(t testing.TB) *Tracker {
	return &Tracker{t: t, live: make(map[uintptr]alloc.Layout)}
}

// Live returns the number of tracked live blocks.
func (k *Tracker) Live() int { return len(k.live) }

func (k *Tracker) add(b []byte, l alloc.Layout) {
	if len(b) == 0 {
		return
	}
	addr := alloc.Addr(b)
	if prev, ok := k.live[addr]; ok {
		k.t.Errorf("tracker: block %#x handed out twice (%v, now %v)", addr, prev, l)
	}
	assert.Zero(k.t, addr%uintptr(l.Align()), "tracker: block %#x not aligned to %d", addr, l.Align())
	assert.Len(k.t, b, l.Size(), "tracker: block %#x has the wrong length", addr)
	k.live[addr] = l
}

func (k *Tracker) check(op string, b []byte, l alloc.Layout) {
	if len(b) == 0 {
		return
	}
	addr := alloc.Addr(b)
	got, ok := k.live[addr]
	if !ok {
		k.t.Errorf("tracker: %s of block %#x that is not live", op, addr)
		return
	}
	assert.Equal(k.t, l, got, "tracker: %s of block %#x with a different layout", op, addr)
}

func (k *Tracker) remove(b []byte) {
	if len(b) > 0 {
		delete(k.live, alloc.Addr(b))
	}
}

func (k *Tracker) resized(b []byte, new alloc.Layout, result []byte, err error) {
	if err != nil {
		return
	}
	k.remove(b)
	k.add(result, new)
}

func (k *Tracker) AfterAlloc(l alloc.Layout, b []byte, err error) {
	if err == nil {
		k.add(b, l)
	}
}

func (k *Tracker) AfterAllocZeroed(l alloc.Layout, b []byte, err error) {
	if err != nil {
		return
	}
	for i, v := range b {
		if v != 0 {
			k.t.Errorf("tracker: zeroed block %#x has byte %d = %#x", alloc.Addr(b), i, v)
			break
		}
	}
	k.add(b, l)
}

func (k *Tracker) BeforeDealloc(b []byte, l alloc.Layout) { k.check("dealloc", b, l) }
func (k *Tracker) AfterDealloc(b []byte, _ alloc.Layout)  { k.remove(b) }

func (k *Tracker) BeforeGrow(b []byte, old, _ alloc.Layout)          { k.check("grow", b, old) }
func (k *Tracker) BeforeGrowZeroed(b []byte, old, _ alloc.Layout)    { k.check("grow", b, old) }
func (k *Tracker) BeforeShrink(b []byte, old, _ alloc.Layout)        { k.check("shrink", b, old) }
func (k *Tracker) BeforeGrowInPlace(b []byte, old, _ alloc.Layout)   { k.check("grow", b, old) }
func (k *Tracker) BeforeShrinkInPlace(b []byte, old, _ alloc.Layout) { k.check("shrink", b, old) }

func (k *Tracker) BeforeGrowInPlaceZeroed(b []byte, old, _ alloc.Layout) {
	k.check("grow", b, old)
}

func (k *Tracker) AfterGrow(b []byte, _, new alloc.Layout, result []byte, err error) {
	k.resized(b, new, result, err)
}

func (k *Tracker) AfterGrowZeroed(b []byte, _, new alloc.Layout, result []byte, err error) {
	k.resized(b, new, result, err)
}

func (k *Tracker) AfterShrink(b []byte, _, new alloc.Layout, result []byte, err error) {
	k.resized(b, new, result, err)
}

func (k *Tracker) AfterGrowInPlace(b []byte, _, new alloc.Layout, result []byte, err error) {
	k.inPlace(b, result, err)
	k.resized(b, new, result, err)
}

func (k *Tracker) AfterGrowInPlaceZeroed(b []byte, _, new alloc.Layout, result []byte, err error) {
	k.inPlace(b, result, err)
	k.resized(b, new, result, err)
}

func (k *Tracker) AfterShrinkInPlace(b []byte, _, new alloc.Layout, result []byte, err error) {
	k.inPlace(b, result, err)
	k.resized(b, new, result, err)
}

func (k *Tracker) inPlace(b, result []byte, err error) {
	if err == nil && len(b) > 0 && len(result) > 0 {
		assert.Equal(k.t, alloc.Addr(b), alloc.Addr(result), "tracker: in-place resize moved the block")
	}
}

func (k *Tracker) AfterAllocateAll(b []byte, err error) {
	if err == nil {
		k.add(b, alloc.MustLayout(len(b), 1))
	}
}

func (k *Tracker) AfterAllocateAllZeroed(b []byte, err error) {
	k.AfterAllocateAll(b, err)
}

func (k *Tracker) AfterDeallocateAll() { clear(k.live) }

func (k *Tracker) String() string {
	return fmt.Sprintf("Tracker{live: %d}", len(k.live))
}
