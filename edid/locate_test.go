package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(buf []byte, at int, fill byte) {
	copy(buf[at:], makeBlock(fill))
	/* Extension half sums to zero on its own */
	for i := 0; i < BlockSize; i++ {
		buf[at+BlockSize+i] = 0
	}
}

func TestFindSingle(t *testing.T) {
	for _, pos := range []int{0, 1, 77, 1000 - Size} {
		buf := make([]byte, 1000)
		for i := range buf {
			buf[i] = 0x55
		}
		place(buf, pos, 4)

		got, err := Find(buf)
		require.NoError(t, err)
		assert.Equal(t, pos, got)
	}
}

func TestFindFirstWins(t *testing.T) {
	buf := make([]byte, 2048)
	place(buf, 900, 1)
	place(buf, 300, 2)

	got, err := Find(buf)
	require.NoError(t, err)
	assert.Equal(t, 300, got)
	assert.Equal(t, []int{300, 900}, FindAll(buf))
}

func TestFindNotFound(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Find(nil)
		assert.ErrorIs(t, err, ErrorSignatureNotFound)
	})

	t.Run("shorter than a block", func(t *testing.T) {
		buf := make([]byte, Size)
		place(buf, 0, 1)
		_, err := Find(buf[:Size-1])
		assert.ErrorIs(t, err, ErrorSignatureNotFound)
	})

	t.Run("bad checksum", func(t *testing.T) {
		buf := make([]byte, 600)
		place(buf, 10, 1)
		buf[10+Size-1] ^= 0x01
		_, err := Find(buf)
		assert.ErrorIs(t, err, ErrorSignatureNotFound)
	})

	t.Run("plain EDID header with other vendor", func(t *testing.T) {
		buf := make([]byte, 600)
		place(buf, 10, 1)
		/* Keep the sum but change the pinned vendor bytes */
		buf[10+8]++
		buf[10+20]--
		_, err := Find(buf)
		assert.ErrorIs(t, err, ErrorSignatureNotFound)
		assert.Empty(t, FindAll(buf))
	})
}
