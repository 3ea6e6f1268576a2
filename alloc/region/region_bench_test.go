package region

import (
	"testing"
	"unsafe"

	"github.com/joshuapare/alloccompose/alloc"
	"github.com/joshuapare/alloccompose/internal/testutil"
)

// fillAndReset allocates 16 blocks of 16 bytes, then resets the region.
func fillAndReset(b *testing.B, r interface {
	alloc.Allocator
	alloc.AllocateAll
}) {
	l := alloc.MustLayout(16, 8)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		for i := 0; i < 16; i++ {
			if _, err := r.Alloc(l); err != nil {
				b.Fatal(err)
			}
		}
		r.DeallocateAll()
	}
}

// BenchmarkRegion_AllocDeallocateAll measures raw bump throughput.
func BenchmarkRegion_AllocDeallocateAll(b *testing.B) {
	fillAndReset(b, New(testutil.Block(b, 256, 8)))
}

func BenchmarkRawRegion_AllocDeallocateAll(b *testing.B) {
	mem := testutil.Mapped(b, 4096)
	fillAndReset(b, NewRawRegion(unsafe.Pointer(unsafe.SliceData(mem)), 256))
}

func BenchmarkSharedRegion_AllocDeallocateAll(b *testing.B) {
	fillAndReset(b, NewShared(testutil.Block(b, 256, 8)))
}

// BenchmarkIntrusiveRegion_AllocDeallocateAll includes the header encode on every step.
func BenchmarkIntrusiveRegion_AllocDeallocateAll(b *testing.B) {
	ir, err := NewIntrusive(testutil.Block(b, 256+HeaderSize, 8))
	if err != nil {
		b.Fatal(err)
	}
	fillAndReset(b, ir)
}
