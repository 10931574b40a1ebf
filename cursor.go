package protodef

import "bytes"

// Cursor is a forward-only view over a caller-owned buffer. Buf is the
// unread remainder of Orig. Reads either advance Buf or fail without
// touching it.
type Cursor struct {
	Orig []byte
	Buf  []byte
}

func MakeCursor(buf []byte) Cursor {
	return Cursor{buf, buf}
}

func NewCursor(buf []byte) *Cursor {
	c := MakeCursor(buf)
	return &c
}

// Off returns the number of bytes consumed so far.
func (c *Cursor) Off() int {
	return len(c.Orig) - len(c.Buf)
}

func (c *Cursor) Len() int {
	return len(c.Buf)
}

func (c *Cursor) Remaining() []byte {
	return c.Buf
}

// Read returns the next n bytes and advances past them. The returned slice
// aliases the underlying buffer.
func (c *Cursor) Read(n int) ([]byte, error) {
	v, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	c.Buf = c.Buf[n:]
	return v, nil
}

func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, dataErrf(c.Orig, c.Off(), ErrInvalidCount, "negative read length %d", n)
	}
	if len(c.Buf) < n {
		return nil, dataErrf(c.Orig, c.Off(), ErrTruncated, "not enough data: %d bytes remaining, %d wanted", len(c.Buf), n)
	}
	return c.Buf[:n:n], nil
}

func (c *Cursor) ReadByte() (byte, error) {
	if len(c.Buf) == 0 {
		return 0, dataErrf(c.Orig, c.Off(), ErrTruncated, "not enough data: 0 bytes remaining, 1 wanted")
	}
	v := c.Buf[0]
	c.Buf = c.Buf[1:]
	return v, nil
}

func (c *Cursor) Skip(n int) error {
	_, err := c.Read(n)
	return err
}

// IndexByte returns the position of the first b in the unread bytes, or -1.
func (c *Cursor) IndexByte(b byte) int {
	return bytes.IndexByte(c.Buf, b)
}
