package region

import (
	"testing"

	"github.com/joshuapare/alloccompose/alloc"
	"github.com/joshuapare/alloccompose/internal/buf"
	"github.com/joshuapare/alloccompose/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntrusiveRegion_HeaderReducesCapacity tests that the header is not allocatable.
func TestIntrusiveRegion_HeaderReducesCapacity(t *testing.T) {
	raw := New(testutil.Block(t, 64, 8))
	ir, err := NewIntrusive(testutil.Block(t, 64, 8))
	require.NoError(t, err)

	assert.Equal(t, raw.CapacityLeft()-HeaderSize, ir.CapacityLeft())
	assert.Equal(t, 64-HeaderSize, ir.Capacity())
}

// TestIntrusiveRegion_OffsetStoredInHeader tests that the offset lives in the block.
func TestIntrusiveRegion_OffsetStoredInHeader(t *testing.T) {
	mem := testutil.Block(t, 64, 8)
	for i := range mem {
		mem[i] = 0xff
	}
	ir, err := NewIntrusive(mem)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), buf.U64LE(mem[:HeaderSize]), "constructor writes an empty header")

	b, err := ir.Alloc(alloc.MustLayout(20, 8))
	require.NoError(t, err)
	assert.Equal(t, uint64(24), buf.U64LE(mem[:HeaderSize]))
	assert.Equal(t, alloc.Addr(mem)+HeaderSize, alloc.Addr(b), "first block follows the header")
	assert.False(t, ir.Owns(mem[:HeaderSize]), "the header is not part of the region")

	ir.Dealloc(b, alloc.MustLayout(20, 8))
	assert.Equal(t, uint64(0), buf.U64LE(mem[:HeaderSize]))
}

// TestIntrusiveRegion_CloneSharesHeader tests that copies observe the same offset.
func TestIntrusiveRegion_CloneSharesHeader(t *testing.T) {
	ir, err := NewIntrusive(testutil.Block(t, 64, 8))
	require.NoError(t, err)
	clone := ir.Clone()

	_, err = clone.Alloc(alloc.MustLayout(16, 8))
	require.NoError(t, err)
	assert.Equal(t, 40, ir.CapacityLeft())

	ir.DeallocateAll()
	assert.True(t, alloc.IsEmpty(clone))
}

// TestIntrusiveRegion_Scenario tests grow and shrink through the header cursor.
func TestIntrusiveRegion_Scenario(t *testing.T) {
	ir, err := NewIntrusive(testutil.Block(t, 72, 8))
	require.NoError(t, err)
	require.Equal(t, 64, ir.Capacity())

	a, err := ir.Alloc(alloc.MustLayout(20, 8))
	require.NoError(t, err)
	_, err = ir.Alloc(alloc.MustLayout(50, 8))
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)

	a, err = ir.GrowInPlace(a, alloc.MustLayout(20, 8), alloc.MustLayout(40, 8))
	require.NoError(t, err)
	assert.Equal(t, 24, ir.CapacityLeft())

	a, err = ir.ShrinkInPlace(a, alloc.MustLayout(40, 8), alloc.MustLayout(8, 8))
	require.NoError(t, err)
	assert.Equal(t, 56, ir.CapacityLeft())

	ir.Dealloc(a, alloc.MustLayout(8, 8))
	assert.True(t, alloc.IsEmpty(ir))
}

// TestIntrusiveRegion_BlockTooSmall tests rejection of blocks that cannot hold the header.
func TestIntrusiveRegion_BlockTooSmall(t *testing.T) {
	_, err := NewIntrusive(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, ErrBlockTooSmall)

	ir, err := NewIntrusive(make([]byte, HeaderSize))
	require.NoError(t, err)
	assert.Equal(t, 0, ir.Capacity())
	_, err = ir.AllocateAll()
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
}

// TestIntrusiveRegion_String tests the diagnostic rendering.
func TestIntrusiveRegion_String(t *testing.T) {
	ir, err := NewIntrusive(testutil.Block(t, 64, 8))
	require.NoError(t, err)
	assert.Equal(t, "IntrusiveRegion{capacity: 56, capacity_left: 56}", ir.String())
}
