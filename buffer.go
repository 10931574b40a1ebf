package protodef

import (
	"bytes"
	"unicode/utf8"
)

// ParseBuffer reads exactly n bytes. The length comes from the caller, not
// from the stream. The result owns a copy of the bytes.
func ParseBuffer(c *Cursor, n int) (Value, error) {
	b, err := c.Read(n)
	if err != nil {
		return nil, err
	}
	return Buffer(bytes.Clone(b)), nil
}

// ParseString reads exactly n bytes that must form valid UTF-8.
func ParseString(c *Cursor, n int) (Value, error) {
	b, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, dataErrf(c.Orig, c.Off(), ErrInvalidUTF8, "string of %d bytes", n)
	}
	c.Buf = c.Buf[n:]
	return String(b), nil
}

// SerialBuffer writes the raw bytes of a Buffer with no length marker.
func SerialBuffer(v Value, out []byte) ([]byte, error) {
	x, ok := v.(Buffer)
	if !ok {
		return out, typeErr("buffer", KindBuffer, v)
	}
	return appendRaw(out, x), nil
}

// SerialString writes the UTF-8 bytes of a String with no length marker.
func SerialString(v Value, out []byte) ([]byte, error) {
	x, ok := v.(String)
	if !ok {
		return out, typeErr("string", KindString, v)
	}
	return appendString(out, string(x)), nil
}

type prefixedCodec struct {
	count Counter
	kind  Kind
}

// Prefixed returns a codec for a Buffer whose length precedes it on the wire,
// encoded with count.
func Prefixed(count Counter) Codec {
	return prefixedCodec{count, KindBuffer}
}

// PrefixedString is like Prefixed, but for a UTF-8 String (protodef's
// pstring).
func PrefixedString(count Counter) Codec {
	return prefixedCodec{count, KindString}
}

func (pc prefixedCodec) Name() string {
	if pc.kind == KindString {
		return "pstring(" + pc.count.Name() + ")"
	}
	return "buffer(" + pc.count.Name() + ")"
}

func (pc prefixedCodec) Kind() Kind {
	return pc.kind
}

func (pc prefixedCodec) Parse(c *Cursor) (Value, error) {
	save := *c
	n, err := pc.count.ParseCount(c)
	if err != nil {
		return nil, err
	}
	var v Value
	if pc.kind == KindString {
		v, err = ParseString(c, n)
	} else {
		v, err = ParseBuffer(c, n)
	}
	if err != nil {
		*c = save
		return nil, err
	}
	return v, nil
}

func (pc prefixedCodec) Serial(v Value, out []byte) ([]byte, error) {
	if KindOf(v) != pc.kind {
		return out, typeErr(pc.Name(), pc.kind, v)
	}
	var payload []byte
	switch x := v.(type) {
	case Buffer:
		payload = x
	case String:
		payload = []byte(x)
	}
	res, err := pc.count.SerialCount(len(payload), out)
	if err != nil {
		return out, err
	}
	return appendRaw(res, payload), nil
}

// ParseArray reads n consecutive elements with elem. When n exceeds the
// remaining input, every element must consume at least one byte, so a
// corrupt count cannot produce more elements than there are input bytes.
func ParseArray(c *Cursor, n int, elem Codec) (*Array, error) {
	if n < 0 {
		return nil, dataErrf(c.Orig, c.Off(), ErrInvalidCount, "negative array length %d", n)
	}
	save := *c
	avail := c.Len()
	arr := &Array{items: make([]Value, 0, min(n, avail))}
	for i := 0; i < n; i++ {
		before := c.Len()
		v, err := elem.Parse(c)
		if err != nil {
			*c = save
			return nil, err
		}
		if c.Len() == before && n > avail {
			*c = save
			return nil, dataErrf(c.Orig, c.Off(), ErrInvalidCount, "array length %d exceeds %d remaining bytes with zero-width %s elements", n, avail, elem.Name())
		}
		arr.items = append(arr.items, v)
	}
	return arr, nil
}

// SerialArray writes every element of an Array with elem. Nothing is written
// unless all elements succeed.
func SerialArray(v Value, elem Codec, out []byte) ([]byte, error) {
	items, ok := AsArray(v)
	if !ok {
		return out, typeErr("array", KindArray, v)
	}
	n := len(out)
	res := out
	for _, item := range items {
		var err error
		res, err = elem.Serial(item, res)
		if err != nil {
			return out[:n], err
		}
	}
	return res, nil
}

type prefixedArrayCodec struct {
	count Counter
	elem  Codec
}

// PrefixedArray returns a codec for an Array whose element count precedes it
// on the wire.
func PrefixedArray(count Counter, elem Codec) Codec {
	return prefixedArrayCodec{count, elem}
}

func (pc prefixedArrayCodec) Name() string {
	return "array(" + pc.count.Name() + ", " + pc.elem.Name() + ")"
}

func (pc prefixedArrayCodec) Kind() Kind {
	return KindArray
}

func (pc prefixedArrayCodec) Parse(c *Cursor) (Value, error) {
	save := *c
	n, err := pc.count.ParseCount(c)
	if err != nil {
		return nil, err
	}
	arr, err := ParseArray(c, n, pc.elem)
	if err != nil {
		*c = save
		return nil, err
	}
	return arr, nil
}

func (pc prefixedArrayCodec) Serial(v Value, out []byte) ([]byte, error) {
	items, ok := AsArray(v)
	if !ok {
		return out, typeErr(pc.Name(), KindArray, v)
	}
	res, err := pc.count.SerialCount(len(items), out)
	if err != nil {
		return out, err
	}
	res, err = SerialArray(v, pc.elem, res)
	if err != nil {
		return out, err
	}
	return res, nil
}
