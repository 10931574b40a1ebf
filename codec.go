package protodef

import (
	"maps"
	"slices"
)

// Codec is a parse/serial pair for one wire primitive.
//
// Parse leaves the cursor untouched when it fails. Serial appends to out and
// returns the extended slice; on failure it returns out as it was passed in.
type Codec interface {
	Name() string
	Kind() Kind
	Parse(c *Cursor) (Value, error)
	Serial(v Value, out []byte) ([]byte, error)
}

// Counter is a numeric codec that can also carry a length, as used by
// length-prefixed buffers, strings and arrays.
type Counter interface {
	Codec
	ParseCount(c *Cursor) (int, error)
	SerialCount(n int, out []byte) ([]byte, error)
}

var (
	_ Counter = U8
	_ Counter = F64
	_ Counter = VarInt
	_ Codec   = Boolean
	_ Codec   = CString
	_ Codec   = Nop
)

var codecsByName = map[string]Codec{
	"u8":      U8,
	"u16":     U16,
	"u32":     U32,
	"u64":     U64,
	"i8":      I8,
	"i16":     I16,
	"i32":     I32,
	"i64":     I64,
	"f32":     F32,
	"f64":     F64,
	"varint":  VarInt,
	"bool":    Boolean,
	"cstring": CString,
	"void":    Nop,
}

// Lookup returns the built-in codec registered under a protodef type name,
// such as "u16" or "cstring".
func Lookup(name string) (Codec, bool) {
	c, ok := codecsByName[name]
	return c, ok
}

// LookupCounter is like Lookup, but only returns codecs usable as a count
// type.
func LookupCounter(name string) (Counter, bool) {
	c, ok := codecsByName[name].(Counter)
	return c, ok
}

// CodecNames lists built-in codec names in sorted order.
func CodecNames() []string {
	return slices.Sorted(maps.Keys(codecsByName))
}

// Encode serializes v with codec into a new exactly-sized slice.
func Encode(codec Codec, v Value) ([]byte, error) {
	scratch := serialBytesPool.Get().([]byte)
	buf, err := codec.Serial(v, scratch)
	if err != nil {
		releaseSerialBytes(scratch)
		return nil, err
	}
	res := make([]byte, len(buf))
	copy(res, buf)
	releaseSerialBytes(buf)
	return res, nil
}

// Decode parses one value with codec and fails with ErrTrailingData unless
// it consumes all of data.
func Decode(codec Codec, data []byte) (Value, error) {
	c := MakeCursor(data)
	v, err := codec.Parse(&c)
	if err != nil {
		return nil, err
	}
	if c.Len() != 0 {
		return nil, dataErrf(data, c.Off(), ErrTrailingData, "%s: %d bytes left", codec.Name(), c.Len())
	}
	return v, nil
}
