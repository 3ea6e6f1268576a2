// Package testutil holds helpers shared by the allocator tests.
package testutil

import (
	"testing"
	"unsafe"

	"github.com/joshuapare/alloccompose/internal/buf"
	"github.com/joshuapare/alloccompose/internal/mmfile"
)

// Block returns a heap block of size bytes whose first byte is aligned to
// align, so that tests can reason about exact offsets inside a region.
//
// Example:
//
//	mem := testutil.Block(t, 64, 8)
//	r := region.New(mem) // Alloc(20) lands at offset 0, next at 24
func Block(t testing.TB, size, align int) []byte {
	t.Helper()
	if !buf.IsPowerOfTwo(align) {
		t.Fatalf("testutil.Block: align %d is not a power of two", align)
	}
	raw := make([]byte, size+align)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int(buf.AlignAddr(addr, uintptr(align)) - addr)
	return raw[off : off+size : off+size]
}

// Mapped returns size bytes of memory mapped outside the Go heap, released
// when the test finishes. The slice must not be used after that.
func Mapped(t testing.TB, size int) []byte {
	t.Helper()
	data, cleanup, err := mmfile.Anon(size)
	if err != nil {
		t.Fatalf("testutil.Mapped: %v", err)
	}
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("testutil.Mapped cleanup: %v", err)
		}
	})
	return data
}
