package region

import (
	"errors"
	"fmt"

	"github.com/joshuapare/alloccompose/alloc"
	"github.com/joshuapare/alloccompose/internal/buf"
)

// HeaderSize is the number of bytes an IntrusiveRegion reserves at the start
// of its block to store the offset.
const HeaderSize = 8

// ErrBlockTooSmall indicates a block that cannot hold the intrusive header.
var ErrBlockTooSmall = errors.New("region: block smaller than header")

// header keeps the offset as a little-endian uint64 inside the block itself.
type header []byte

func (h header) load() int     { return int(buf.U64LE(h)) }
func (h header) store(off int) { buf.PutU64LE(h, uint64(off)) }

// IntrusiveRegion is a region that stores its offset in the first HeaderSize
// bytes of its block instead of in a separate field. The header is never
// handed out, so the usable capacity is len(mem)-HeaderSize. Copies made with
// Clone read and write the same header.
type IntrusiveRegion struct {
	bump
}

var (
	_ alloc.Allocator         = (*IntrusiveRegion)(nil)
	_ alloc.AllocateAll       = (*IntrusiveRegion)(nil)
	_ alloc.ReallocateInPlace = (*IntrusiveRegion)(nil)
	_ alloc.Owns              = (*IntrusiveRegion)(nil)
)

// NewIntrusive writes an empty header into mem and returns a region over the
// rest of it. It fails with ErrBlockTooSmall when mem is shorter than
// HeaderSize.
func NewIntrusive(mem []byte) (*IntrusiveRegion, error) {
	if len(mem) < HeaderSize {
		return nil, fmt.Errorf("%w: %d < %d bytes", ErrBlockTooSmall, len(mem), HeaderSize)
	}
	h := header(mem[:HeaderSize:HeaderSize])
	h.store(0)
	return &IntrusiveRegion{bump{mem: mem[HeaderSize:], cur: h}}, nil
}

// Clone returns another region that shares this region's header and block.
func (r *IntrusiveRegion) Clone() *IntrusiveRegion {
	return &IntrusiveRegion{r.bump}
}

func (r *IntrusiveRegion) String() string { return r.describe("IntrusiveRegion") }
