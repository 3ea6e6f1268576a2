package alloc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNull_AllocFails tests that every allocate-family call fails.
func TestNull_AllocFails(t *testing.T) {
	var n Null
	for _, size := range []int{0, 1, 4096} {
		l := MustLayout(size, 8)
		_, err := n.Alloc(l)
		require.ErrorIs(t, err, ErrOutOfMemory)
		_, err = n.AllocZeroed(l)
		require.ErrorIs(t, err, ErrOutOfMemory)
	}
	_, err := n.AllocateAll()
	require.ErrorIs(t, err, ErrOutOfMemory)
	_, err = n.AllocateAllZeroed()
	require.ErrorIs(t, err, ErrOutOfMemory)
}

// TestNull_Capacity tests that Null reports no capacity and owns nothing.
func TestNull_Capacity(t *testing.T) {
	var n Null
	assert.Equal(t, 0, n.Capacity())
	assert.Equal(t, 0, n.CapacityLeft())
	assert.False(t, n.Owns(nil))
	assert.False(t, n.Owns(make([]byte, 16)))
}

// TestNull_MutatingCallsArePreconditionViolations tests detection of calls Null can never serve.
func TestNull_MutatingCallsArePreconditionViolations(t *testing.T) {
	var n Null
	b := make([]byte, 8)
	old, bigger, smaller := MustLayout(8, 8), MustLayout(16, 8), MustLayout(4, 8)

	for name, call := range map[string]func() ([]byte, error){
		"Grow":              func() ([]byte, error) { return n.Grow(b, old, bigger) },
		"GrowZeroed":        func() ([]byte, error) { return n.GrowZeroed(b, old, bigger) },
		"Shrink":            func() ([]byte, error) { return n.Shrink(b, old, smaller) },
		"GrowInPlace":       func() ([]byte, error) { return n.GrowInPlace(b, old, bigger) },
		"GrowInPlaceZeroed": func() ([]byte, error) { return n.GrowInPlaceZeroed(b, old, bigger) },
		"ShrinkInPlace":     func() ([]byte, error) { return n.ShrinkInPlace(b, old, smaller) },
	} {
		_, err := call()
		require.ErrorIs(t, err, ErrPrecondition, name)
	}

	assertPanicsWith := func(f func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, ErrPrecondition))
		}()
		f()
	}
	assertPanicsWith(func() { n.Dealloc(b, old) })
	assertPanicsWith(func() { n.DeallocateAll() })
}
