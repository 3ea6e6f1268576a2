package stats_test

import (
	"testing"

	"github.com/joshuapare/alloccompose/alloc"
	"github.com/joshuapare/alloccompose/alloc/region"
	"github.com/joshuapare/alloccompose/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fullAllocator interface {
	alloc.Allocator
	alloc.ReallocateInPlace
	alloc.Owns
}

func l(size int) alloc.Layout { return alloc.MustLayout(size, 1) }

// runSuite drives a 32-byte region through one success and one failure of
// every classification the filtered counters distinguish.
func runSuite(t *testing.T, cb alloc.CallbackRef) {
	t.Helper()
	r := region.New(testutil.Block(t, 32, 8))
	a, ok := alloc.NewProxy(alloc.NewProxy(r, testutil.NewTracker(t)), cb).(fullAllocator)
	require.True(t, ok, "proxy over a region keeps every capability")

	_, err := a.Alloc(l(64))
	require.Error(t, err)
	_, err = a.AllocZeroed(l(64))
	require.Error(t, err)

	m, err := a.Alloc(l(4))
	require.NoError(t, err)
	tmp, err := a.AllocZeroed(l(28))
	require.NoError(t, err)

	_, err = a.ShrinkInPlace(m, l(4), l(2))
	require.Error(t, err, "m is buried under tmp")
	_, err = a.Shrink(m, l(4), l(2))
	require.Error(t, err, "no room to move m")
	a.Dealloc(tmp, l(28))

	_, err = a.GrowZeroed(m, l(4), l(80))
	require.Error(t, err)
	_, err = a.GrowInPlaceZeroed(m, l(4), l(80))
	require.Error(t, err)
	_, err = a.Grow(m, l(4), l(80))
	require.Error(t, err)
	_, err = a.GrowInPlace(m, l(4), l(80))
	require.Error(t, err)

	m, err = a.GrowZeroed(m, l(4), l(8))
	require.NoError(t, err)
	m, err = a.Grow(m, l(8), l(16))
	require.NoError(t, err)
	m, err = a.Shrink(m, l(16), l(4))
	require.NoError(t, err)

	m, err = a.GrowInPlaceZeroed(m, l(4), l(8))
	require.NoError(t, err)
	m, err = a.GrowInPlace(m, l(8), l(16))
	require.NoError(t, err)
	m, err = a.ShrinkInPlace(m, l(16), l(4))
	require.NoError(t, err)

	require.True(t, a.Owns(m))
	a.Dealloc(m, l(4))
	require.False(t, a.Owns(make([]byte, 4)))
}
