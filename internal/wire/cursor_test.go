package wire

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestByteOrder(t *testing.T) {
	buf := make([]byte, 4)

	Encode16(buf, 0x0021)
	assert.Equal(t, []byte{0x00, 0x21}, buf[:2])
	assert.Equal(t, uint16(0x0021), Decode16(buf))

	Encode32(buf, 0xDEADBEEF)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, buf)
	assert.Equal(t, uint32(0xDEADBEEF), Decode32(buf))

	Encode8(buf, 0x7F)
	assert.Equal(t, uint8(0x7F), Decode8(buf))
}

func TestCursor(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}

	t.Run("reads sequentially", func(t *testing.T) {
		c := NewCursor(data)

		v8, err := c.Uint8()
		require.NoError(t, err)
		assert.Equal(t, uint8(0x01), v8)

		v16, err := c.Uint16()
		require.NoError(t, err)
		assert.Equal(t, uint16(0x0203), v16)

		v32, err := c.Uint32()
		require.NoError(t, err)
		assert.Equal(t, uint32(0x04050607), v32)

		assert.Equal(t, len(data), c.Pos())
		assert.Equal(t, 0, c.Len())
	})

	t.Run("fails closed on overrun", func(t *testing.T) {
		c := NewCursor(data)
		require.NoError(t, c.Skip(5))

		_, err := c.Uint32()

		assert.ErrorIs(t, err, ErrShortBuffer)
		assert.Equal(t, 5, c.Pos())
	})

	t.Run("rejects negative lengths", func(t *testing.T) {
		c := NewCursor(data)

		_, err := c.Next(-1)
		assert.ErrorIs(t, err, ErrShortBuffer)
	})

	t.Run("copies into destination", func(t *testing.T) {
		c := NewCursor(data)
		dst := make([]byte, 3)

		require.NoError(t, c.Copy(dst))
		assert.Equal(t, []byte{0x01, 0x02, 0x03}, dst)
	})
}
