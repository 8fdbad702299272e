package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec_PushReadPop(t *testing.T) {
	a := newTestArena(t, 1024)
	v := NewVec[int64](NewResource(a))

	require.Zero(t, v.Len())

	require.NoError(t, v.Push(42))
	require.Equal(t, 1, v.Len())
	assert.Equal(t, int64(42), v.At(0), "pushed element should read back identically")

	x, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(42), x)
	assert.Zero(t, v.Len())

	// The resource's no-op Deallocate must leave the arena usable.
	p, err := a.Alloc(64, 8)
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestVec_GrowthPreservesElements(t *testing.T) {
	a := newTestArena(t, 1024)
	v := NewVec[int64](NewResource(a))

	const n = 1000
	for i := 0; i < n; i++ {
		require.NoError(t, v.Push(int64(i)), "Push %d should succeed", i)
	}
	require.Equal(t, n, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), n)

	for i := 0; i < n; i++ {
		assert.Equal(t, int64(i), v.At(i), "element %d should survive regrowth", i)
	}
}

func TestVec_PopEmpty(t *testing.T) {
	a := newTestArena(t, 1024)
	v := NewVec[int32](NewResource(a))

	_, ok := v.Pop()
	assert.False(t, ok, "Pop on an empty Vec should report false")
}

func TestVec_AtOutOfRangePanics(t *testing.T) {
	a := newTestArena(t, 1024)
	v := NewVec[int64](NewResource(a))
	require.NoError(t, v.Push(1))

	assert.Panics(t, func() { v.At(1) })
	assert.Panics(t, func() { v.At(-1) })
}

func TestVec_ZeroSizeElements(t *testing.T) {
	a := newTestArena(t, 1024)
	v := NewVec[struct{}](NewResource(a))

	for i := 0; i < 10; i++ {
		require.NoError(t, v.Push(struct{}{}))
	}
	assert.Equal(t, 10, v.Len())
	_, ok := v.Pop()
	assert.True(t, ok)
}
