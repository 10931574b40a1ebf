package protodef

import (
	"strings"
	"unicode/utf8"
)

type boolCodec struct{}

// Boolean reads one byte: 0 is false, 1 is true, anything else is invalid.
var Boolean boolCodec

func (boolCodec) Name() string { return "bool" }
func (boolCodec) Kind() Kind   { return KindBool }

func (boolCodec) Parse(c *Cursor) (Value, error) {
	b, err := c.Peek(1)
	if err != nil {
		return nil, err
	}
	var v Bool
	switch b[0] {
	case 0:
		v = false
	case 1:
		v = true
	default:
		return nil, dataErrf(c.Orig, c.Off(), ErrInvalidBool, "bool byte %#02x", b[0])
	}
	c.Buf = c.Buf[1:]
	return v, nil
}

func (bc boolCodec) Serial(v Value, out []byte) ([]byte, error) {
	x, ok := v.(Bool)
	if !ok {
		return out, typeErr(bc.Name(), KindBool, v)
	}
	if x {
		return appendByte(out, 1), nil
	}
	return appendByte(out, 0), nil
}

type cstringCodec struct{}

// CString is a UTF-8 string terminated by a single zero byte.
var CString cstringCodec

func (cstringCodec) Name() string { return "cstring" }
func (cstringCodec) Kind() Kind   { return KindString }

func (cstringCodec) Parse(c *Cursor) (Value, error) {
	end := c.IndexByte(0)
	if end < 0 {
		return nil, dataErrf(c.Orig, c.Off(), ErrUnterminatedString, "no terminator in %d remaining bytes", c.Len())
	}
	b := c.Buf[:end]
	if !utf8.Valid(b) {
		return nil, dataErrf(c.Orig, c.Off(), ErrInvalidUTF8, "cstring of %d bytes", end)
	}
	c.Buf = c.Buf[end+1:]
	return String(b), nil
}

func (cc cstringCodec) Serial(v Value, out []byte) ([]byte, error) {
	x, ok := v.(String)
	if !ok {
		return out, typeErr(cc.Name(), KindString, v)
	}
	if strings.IndexByte(string(x), 0) >= 0 {
		return out, ErrInvalidString
	}
	out = appendString(out, string(x))
	return appendByte(out, 0), nil
}

type voidCodec struct{}

// Nop is the void codec: it reads and writes nothing.
var Nop voidCodec

func (voidCodec) Name() string { return "void" }
func (voidCodec) Kind() Kind   { return KindVoid }

func (voidCodec) Parse(c *Cursor) (Value, error) {
	return Void{}, nil
}

func (voidCodec) Serial(v Value, out []byte) ([]byte, error) {
	return out, nil
}
