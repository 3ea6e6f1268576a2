package region

import (
	"fmt"

	"github.com/joshuapare/alloccompose/alloc"
)

// sharedState is the region every SharedRegion clone points to.
type sharedState struct {
	bump
	refs int
}

// SharedRegion is a region whose handles share one offset. Allocating through
// any clone is visible through all of them. Handles are reference counted:
// once every handle has been released the block is dropped and the region
// behaves as if its capacity were zero.
//
// Sharing a region does not make it safe for concurrent use.
type SharedRegion struct {
	*sharedState
	released bool
}

var (
	_ alloc.Allocator         = (*SharedRegion)(nil)
	_ alloc.AllocateAll       = (*SharedRegion)(nil)
	_ alloc.ReallocateInPlace = (*SharedRegion)(nil)
	_ alloc.Owns              = (*SharedRegion)(nil)
)

// NewShared returns the first handle to an empty shared region over mem.
func NewShared(mem []byte) *SharedRegion {
	return &SharedRegion{sharedState: &sharedState{bump: bump{mem: mem, cur: &cell{}}, refs: 1}}
}

// Clone returns a new handle to the same region. Cloning a released handle
// returns another released handle.
func (r *SharedRegion) Clone() *SharedRegion {
	if r.released {
		return &SharedRegion{sharedState: r.sharedState, released: true}
	}
	r.refs++
	return &SharedRegion{sharedState: r.sharedState}
}

// Release gives up this handle. Releasing the last handle drops the block.
// Releasing a handle twice has no further effect. A released handle must not
// be used for anything but Refs, Clone and Release.
func (r *SharedRegion) Release() {
	if r.released {
		return
	}
	r.released = true
	r.refs--
	if r.refs == 0 {
		r.mem = nil
		r.cur.store(0)
	}
}

// Refs returns the number of live handles.
func (r *SharedRegion) Refs() int { return r.refs }

func (r *SharedRegion) String() string {
	return fmt.Sprintf("%s refs=%d", r.describe("SharedRegion"), r.refs)
}
