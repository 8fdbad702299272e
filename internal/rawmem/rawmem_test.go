package rawmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveReturnsZeroedWritableStorage(t *testing.T) {
	buf, release, err := Reserve(4096)
	require.NoError(t, err, "Reserve should succeed")
	require.Len(t, buf, 4096)
	defer func() {
		require.NoError(t, release())
	}()

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: 0x%x", i, b)
		}
	}

	// Storage must be writable and hold values.
	buf[0] = 0xde
	buf[4095] = 0xad
	assert.Equal(t, byte(0xde), buf[0])
	assert.Equal(t, byte(0xad), buf[4095])
}

func TestReserveRejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1, -4096} {
		_, _, err := Reserve(n)
		assert.Error(t, err, "Reserve(%d) should fail", n)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	buf, release, err := Reserve(1024)
	require.NoError(t, err)
	require.NotNil(t, buf)

	require.NoError(t, release())
	require.NoError(t, release(), "second release should be a no-op")
}
