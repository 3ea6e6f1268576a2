package alloc_test

import (
	"testing"

	"github.com/joshuapare/alloccompose/alloc"
	"github.com/joshuapare/alloccompose/alloc/region"
	"github.com/joshuapare/alloccompose/alloc/stats"
	"github.com/joshuapare/alloccompose/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sizes records the layout of every allocation that reaches it.
type sizes struct {
	alloc.NopCallbacks
	seen []int
}

func (s *sizes) BeforeAlloc(l alloc.Layout)       { s.seen = append(s.seen, l.Size()) }
func (s *sizes) BeforeAllocZeroed(l alloc.Layout) { s.seen = append(s.seen, l.Size()) }

type chunkAllocator interface {
	alloc.Allocator
	alloc.ReallocateInPlace
	alloc.Owns
}

func newChunk(t *testing.T, inner alloc.Allocator, size int) chunkAllocator {
	t.Helper()
	c, err := alloc.NewChunk(inner, size)
	require.NoError(t, err)
	ca, ok := c.(chunkAllocator)
	require.True(t, ok)
	return ca
}

// TestChunk_RoundsForwardedSize tests that the inner allocator sees whole chunks.
func TestChunk_RoundsForwardedSize(t *testing.T) {
	rec := &sizes{}
	c := newChunk(t, alloc.NewProxy(region.New(testutil.Block(t, 1024, 8)), rec), 48)

	for _, size := range []int{1, 48, 49, 0, 100} {
		b, err := c.Alloc(alloc.MustLayout(size, 8))
		require.NoError(t, err)
		assert.Len(t, b, size, "caller sees its own size")
	}
	_, err := c.AllocZeroed(alloc.MustLayout(97, 8))
	require.NoError(t, err)

	assert.Equal(t, []int{48, 48, 96, 0, 144, 144}, rec.seen)
}

// TestChunk_InvalidSize tests rejection of non-positive chunk sizes.
func TestChunk_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -8} {
		_, err := alloc.NewChunk(alloc.Null{}, size)
		require.ErrorIs(t, err, alloc.ErrInvalidChunkSize)
		require.ErrorIs(t, err, alloc.ErrInvalidLayout)
	}
}

// TestChunk_DeallocUsesRoundedLayout tests that freeing gives the whole chunk back.
func TestChunk_DeallocUsesRoundedLayout(t *testing.T) {
	r := region.New(testutil.Block(t, 128, 8))
	c := newChunk(t, r, 32)
	l := alloc.MustLayout(10, 8)

	b, err := c.Alloc(l)
	require.NoError(t, err)
	assert.Equal(t, 96, r.CapacityLeft())
	assert.Equal(t, 32, cap(b))

	c.Dealloc(b, l)
	assert.True(t, alloc.IsEmpty(r))
}

// TestChunk_GrowWithinChunk tests that growing inside the rounded size never reaches the inner allocator.
func TestChunk_GrowWithinChunk(t *testing.T) {
	var inner stats.Counter
	r := region.New(testutil.Block(t, 128, 8))
	c := newChunk(t, alloc.NewProxy(r, &inner), 32)

	b, err := c.Alloc(alloc.MustLayout(10, 8))
	require.NoError(t, err)
	copy(b, "0123456789")

	nb, err := c.Grow(b, alloc.MustLayout(10, 8), alloc.MustLayout(30, 8))
	require.NoError(t, err)
	assert.Equal(t, alloc.Addr(b), alloc.Addr(nb))
	assert.Len(t, nb, 30)
	assert.Equal(t, "0123456789", string(nb[:10]))

	nb, err = c.GrowInPlace(nb, alloc.MustLayout(30, 8), alloc.MustLayout(32, 8))
	require.NoError(t, err)
	nb, err = c.Shrink(nb, alloc.MustLayout(32, 8), alloc.MustLayout(17, 8))
	require.NoError(t, err)
	_, err = c.ShrinkInPlace(nb, alloc.MustLayout(17, 8), alloc.MustLayout(1, 8))
	require.NoError(t, err)

	assert.Zero(t, inner.NumGrows())
	assert.Zero(t, inner.NumShrinks())
	assert.Equal(t, 96, r.CapacityLeft())
}

// TestChunk_GrowZeroedWithinChunk tests that stale tail bytes are cleared.
func TestChunk_GrowZeroedWithinChunk(t *testing.T) {
	c := newChunk(t, region.New(testutil.Block(t, 64, 8)), 32)
	b, err := c.Alloc(alloc.MustLayout(10, 8))
	require.NoError(t, err)
	full := b[:cap(b)]
	for i := range full {
		full[i] = 0xff
	}

	nb, err := c.GrowZeroed(b, alloc.MustLayout(10, 8), alloc.MustLayout(20, 8))
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), nb[9])
	assert.Equal(t, make([]byte, 10), nb[10:20])
}

// TestChunk_GrowAcrossChunks tests delegation with rounded layouts.
func TestChunk_GrowAcrossChunks(t *testing.T) {
	var inner stats.FilteredCounter
	r := region.New(testutil.Block(t, 128, 8))
	c := newChunk(t, alloc.NewProxy(r, &inner), 32)

	b, err := c.Alloc(alloc.MustLayout(30, 8))
	require.NoError(t, err)
	copy(b, "keep")

	nb, err := c.Grow(b, alloc.MustLayout(30, 8), alloc.MustLayout(40, 8))
	require.NoError(t, err)
	assert.Len(t, nb, 40)
	assert.Equal(t, 64, cap(nb))
	assert.Equal(t, "keep", string(nb[:4]))
	assert.Equal(t, 64, r.CapacityLeft(), "top block grew in place to two chunks")
	assert.Equal(t, uint64(1), inner.NumGrowsFilter(stats.PlacementMayMove, stats.AllocInitUninitialized, stats.ResultOk))

	nb, err = c.Shrink(nb, alloc.MustLayout(40, 8), alloc.MustLayout(8, 8))
	require.NoError(t, err)
	assert.Len(t, nb, 8)
	assert.Equal(t, 96, r.CapacityLeft())
}

// TestChunk_GrowZeroedAcrossChunks tests that bytes between the old size and the old chunk end are cleared.
func TestChunk_GrowZeroedAcrossChunks(t *testing.T) {
	c := newChunk(t, region.New(testutil.Block(t, 128, 8)), 16)
	b, err := c.Alloc(alloc.MustLayout(4, 8))
	require.NoError(t, err)
	full := b[:cap(b)]
	for i := range full {
		full[i] = 0xee
	}

	nb, err := c.GrowInPlaceZeroed(b, alloc.MustLayout(4, 8), alloc.MustLayout(40, 8))
	require.NoError(t, err)
	assert.Equal(t, alloc.Addr(b), alloc.Addr(nb))
	assert.Equal(t, make([]byte, 36), nb[4:40])
}

// TestChunk_InPlaceWithoutInnerSupport tests the fast path and the refusal beyond it.
func TestChunk_InPlaceWithoutInnerSupport(t *testing.T) {
	c, err := alloc.NewChunk(plainOnly{region.New(testutil.Block(t, 128, 8))}, 32)
	require.NoError(t, err)
	rip, ok := c.(alloc.ReallocateInPlace)
	require.True(t, ok, "chunk always resizes in place within a chunk")
	_, ok = c.(alloc.Owns)
	assert.False(t, ok, "chunk owns only when the inner allocator does")

	b, err := c.Alloc(alloc.MustLayout(8, 8))
	require.NoError(t, err)
	b, err = rip.GrowInPlace(b, alloc.MustLayout(8, 8), alloc.MustLayout(32, 8))
	require.NoError(t, err)

	_, err = rip.GrowInPlace(b, alloc.MustLayout(32, 8), alloc.MustLayout(33, 8))
	require.ErrorIs(t, err, alloc.ErrNotInPlace)
	_, err = rip.ShrinkInPlace(b, alloc.MustLayout(32, 8), alloc.MustLayout(64, 8))
	require.ErrorIs(t, err, alloc.ErrPrecondition)
}

// TestChunk_Owns tests that membership is answered by the inner allocator.
func TestChunk_Owns(t *testing.T) {
	c := newChunk(t, region.New(testutil.Block(t, 64, 8)), 8)
	b, err := c.Alloc(alloc.MustLayout(3, 1))
	require.NoError(t, err)
	assert.True(t, c.Owns(b))
	assert.False(t, c.Owns(make([]byte, 3)))

	_, ok := any(c).(alloc.AllocateAll)
	assert.False(t, ok, "chunk never claims everything at once")
}

// TestChunk_Tracked tests a chunked region under the precondition tracker.
func TestChunk_Tracked(t *testing.T) {
	c := alloc.NewProxy(newChunk(t, region.New(testutil.Block(t, 256, 16)), 24), testutil.NewTracker(t))
	l1, l2 := alloc.MustLayout(5, 8), alloc.MustLayout(30, 16)

	a, err := c.Alloc(l1)
	require.NoError(t, err)
	b, err := c.AllocZeroed(l2)
	require.NoError(t, err)
	b, err = c.Grow(b, l2, alloc.MustLayout(60, 16))
	require.NoError(t, err)
	c.Dealloc(b, alloc.MustLayout(60, 16))
	c.Dealloc(a, l1)
}
