package protodef

import (
	"encoding/hex"
	"io"
)

func ensureCapacity(buf []byte, minCap int) []byte {
	c := cap(buf)
	if minCap > c {
		if c < 16 {
			c = 16
		}
		for minCap > c {
			c <<= 1
		}
		old := buf
		buf = make([]byte, len(old), c)
		copy(buf, old)
	}
	return buf
}

func grow(buf []byte, n int) (int, []byte) {
	off := len(buf)
	newLen := off + n
	buf = ensureCapacity(buf, newLen)
	return off, buf[:newLen]
}

func appendRaw(buf []byte, chunk []byte) []byte {
	n := len(chunk)
	off, buf := grow(buf, n)
	copy(buf[off:], chunk)
	return buf
}

func appendString(buf []byte, v string) []byte {
	n := len(v)
	off, buf := grow(buf, n)
	copy(buf[off:], v)
	return buf
}

func appendByte(buf []byte, v byte) []byte {
	off, buf := grow(buf, 1)
	buf[off] = v
	return buf
}

// appendBigEndian writes the low width bytes of bits, most significant first.
func appendBigEndian(buf []byte, bits uint64, width int) []byte {
	off, buf := grow(buf, width)
	for i := width - 1; i >= 0; i-- {
		buf[off+i] = byte(bits)
		bits >>= 8
	}
	return buf
}

func bigEndianBits(b []byte) uint64 {
	var bits uint64
	for _, c := range b {
		bits = bits<<8 | uint64(c)
	}
	return bits
}

type bytesBuilder struct {
	Buf []byte
}

var _ io.Writer = (*bytesBuilder)(nil)

func (bb *bytesBuilder) Write(b []byte) (int, error) {
	bb.Buf = appendRaw(bb.Buf, b)
	return len(b), nil
}

func (bb *bytesBuilder) WriteByte(v byte) error {
	bb.Buf = appendByte(bb.Buf, v)
	return nil
}

func hexstr(b []byte) string {
	if b == nil {
		return "<nil>"
	}
	if len(b) == 0 {
		return "<empty>"
	}
	return hex.EncodeToString(b)
}
