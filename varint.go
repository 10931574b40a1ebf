package protodef

import "math"

// MaxVarIntLen32 is the maximum encoded length of a 32-bit varint.
const MaxVarIntLen32 = 5

type varIntCodec struct{}

// VarInt encodes an Int32 as 7-bit groups, least significant group first,
// with the high bit of every group but the last set. Negative values use
// their unsigned bit pattern and always take 5 bytes.
var VarInt varIntCodec

func (varIntCodec) Name() string { return "varint" }
func (varIntCodec) Kind() Kind   { return KindInt32 }

func (varIntCodec) ReadInt32(c *Cursor) (int32, error) {
	var value uint32
	var shift uint
	for i := 0; i < MaxVarIntLen32; i++ {
		if i >= len(c.Buf) {
			return 0, dataErrf(c.Orig, c.Off(), ErrTruncated, "varint: input ends after %d bytes", i)
		}
		b := c.Buf[i]
		value |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			// the last group only has room for bits 28..31
			if i == MaxVarIntLen32-1 && b&0x70 != 0 {
				return 0, dataErrf(c.Orig, c.Off(), ErrVarIntOverflow, "varint: final group %#02x exceeds 32 bits", b)
			}
			c.Buf = c.Buf[i+1:]
			return int32(value), nil
		}
		shift += 7
	}
	return 0, dataErrf(c.Orig, c.Off(), ErrVarIntOverflow, "varint: not terminated within %d bytes", MaxVarIntLen32)
}

func (varIntCodec) AppendInt32(out []byte, v int32) []byte {
	u := uint32(v)
	for u >= 0x80 {
		out = appendByte(out, byte(u)|0x80)
		u >>= 7
	}
	return appendByte(out, byte(u))
}

// VarIntLen returns the encoded length of v.
func VarIntLen(v int32) int {
	u := uint32(v)
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

func (vc varIntCodec) Parse(c *Cursor) (Value, error) {
	v, err := vc.ReadInt32(c)
	if err != nil {
		return nil, err
	}
	return Int32(v), nil
}

func (vc varIntCodec) Serial(v Value, out []byte) ([]byte, error) {
	x, ok := v.(Int32)
	if !ok {
		return out, typeErr(vc.Name(), KindInt32, v)
	}
	return vc.AppendInt32(out, int32(x)), nil
}

func (vc varIntCodec) ParseCount(c *Cursor) (int, error) {
	save := *c
	v, err := vc.ReadInt32(c)
	if err != nil {
		return 0, err
	}
	count, err := AsCount(Int32(v))
	if err != nil {
		*c = save
		return 0, dataErrf(c.Orig, c.Off(), err, "varint count")
	}
	return count, nil
}

func (vc varIntCodec) SerialCount(count int, out []byte) ([]byte, error) {
	if count < 0 || int64(count) > math.MaxInt32 {
		return out, countErrf(KindInt32, "count %d out of range", count)
	}
	return vc.AppendInt32(out, int32(count)), nil
}
