package wire

import (
	"errors"
	"fmt"
)

var ErrShortBuffer = errors.New("read past end of buffer")

// Cursor walks a byte slice front to back. Every read fails closed: if it
// would overrun the slice the cursor does not move and ErrShortBuffer is
// returned.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

func (c *Cursor) Next(n int) ([]byte, error) {
	if n < 0 || n > c.Len() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, c.pos, c.Len())
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *Cursor) Skip(n int) error {
	_, err := c.Next(n)
	return err
}

func (c *Cursor) Uint8() (uint8, error) {
	b, err := c.Next(1)
	if err != nil {
		return 0, err
	}
	return Decode8(b), nil
}

func (c *Cursor) Uint16() (uint16, error) {
	b, err := c.Next(2)
	if err != nil {
		return 0, err
	}
	return Decode16(b), nil
}

func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.Next(4)
	if err != nil {
		return 0, err
	}
	return Decode32(b), nil
}

// Copy fills dst from the cursor.
func (c *Cursor) Copy(dst []byte) error {
	b, err := c.Next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}
