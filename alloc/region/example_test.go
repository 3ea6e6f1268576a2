package region_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/alloccompose/alloc"
	"github.com/joshuapare/alloccompose/alloc/region"
)

func Example() {
	r := region.New(make([]byte, 64))
	l20 := alloc.MustLayout(20, 8)

	b, _ := r.Alloc(l20)
	fmt.Println(r.Capacity() - r.CapacityLeft())

	_, err := r.Alloc(alloc.MustLayout(50, 8))
	fmt.Println(errors.Is(err, alloc.ErrOutOfMemory))

	r.Dealloc(b, l20)
	fmt.Println(r.Capacity() - r.CapacityLeft())

	_, err = r.Alloc(alloc.MustLayout(50, 8))
	fmt.Println(err == nil)
	// Output:
	// 24
	// true
	// 0
	// true
}

func ExampleSharedRegion() {
	a := region.NewShared(make([]byte, 64))
	b := a.Clone()

	_, _ = b.Alloc(alloc.MustLayout(16, 8))
	fmt.Println(a.CapacityLeft(), a.Refs())

	a.Release()
	b.Release()
	fmt.Println(b.Capacity(), b.Refs())
	// Output:
	// 48 2
	// 0 0
}
