package protodef

import (
	"encoding/hex"
	"errors"
	"math"
	"testing"
)

func checkRoundTrip[T Number](t *testing.T, codec Numeric[T], values ...T) {
	t.Helper()
	for _, v := range values {
		buf, err := codec.Serial(v, nil)
		if err != nil {
			t.Fatalf("%s.Serial(%s) failed: %v", codec.Name(), Dump(v), err)
		}
		if len(buf) != codec.Width() {
			t.Fatalf("%s.Serial(%s) wrote %d bytes, wanted %d", codec.Name(), Dump(v), len(buf), codec.Width())
		}
		c := MakeCursor(buf)
		got, err := codec.Parse(&c)
		if err != nil {
			t.Fatalf("%s.Parse(%x) failed: %v", codec.Name(), buf, err)
		}
		if !Equal(got, v) {
			t.Fatalf("%s round trip of %s = %s", codec.Name(), Dump(v), Dump(got))
		}
		eq(t, c.Off(), codec.Width())
	}
}

func TestNumeric_RoundTrip(t *testing.T) {
	checkRoundTrip(t, U8, 0, 1, 0x7F, 0x80, math.MaxUint8)
	checkRoundTrip(t, U16, 0, 1, 0x1234, math.MaxUint16)
	checkRoundTrip(t, U32, 0, 1, 0xDEADBEEF, math.MaxUint32)
	checkRoundTrip(t, U64, 0, 1, 0x0102030405060708, math.MaxUint64)
	checkRoundTrip(t, I8, 0, 1, -1, math.MinInt8, math.MaxInt8)
	checkRoundTrip(t, I16, 0, -2, math.MinInt16, math.MaxInt16)
	checkRoundTrip(t, I32, 0, -300, math.MinInt32, math.MaxInt32)
	checkRoundTrip(t, I64, 0, -1, math.MinInt64, math.MaxInt64)
	checkRoundTrip(t, F32, 0, 1, -1.5, math.MaxFloat32, math.SmallestNonzeroFloat32,
		Float(math.Inf(1)), Float(math.Inf(-1)), Float(math.NaN()), Float(math.Copysign(0, -1)))
	checkRoundTrip(t, F64, 0, 1, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64,
		Double(math.Inf(1)), Double(math.NaN()), Double(math.Copysign(0, -1)))
}

func TestNumeric_RoundTripSweep(t *testing.T) {
	for shift := 0; shift < 64; shift++ {
		bits := uint64(1) << shift
		checkRoundTrip(t, U64, Uint64(bits), Uint64(bits-1), Uint64(^bits))
		checkRoundTrip(t, I64, Int64(bits), Int64(bits-1), Int64(^bits))
		checkRoundTrip(t, F64, Double(math.Float64frombits(bits)), Double(math.Float64frombits(^bits)))
		if shift < 32 {
			checkRoundTrip(t, U32, Uint32(bits), Uint32(^bits))
			checkRoundTrip(t, I32, Int32(bits), Int32(^bits))
			checkRoundTrip(t, F32, Float(math.Float32frombits(uint32(bits))), Float(math.Float32frombits(^uint32(bits))))
		}
	}
	for i := 0; i <= math.MaxUint16; i++ {
		checkRoundTrip(t, U16, Uint16(i))
		checkRoundTrip(t, I16, Int16(i))
	}
}

func TestNumeric_BigEndianBytes(t *testing.T) {
	tests := []struct {
		codec Codec
		value Value
		hex   string
	}{
		{U8, Uint8(0xAB), "ab"},
		{U16, Uint16(0x0102), "0102"},
		{U32, Uint32(0xDEADBEEF), "deadbeef"},
		{U64, Uint64(0x0102030405060708), "0102030405060708"},
		{I8, Int8(-1), "ff"},
		{I16, Int16(-2), "fffe"},
		{I32, Int32(-300), "fffffed4"},
		{I64, Int64(-1), "ffffffffffffffff"},
		{F32, Float(1), "3f800000"},
		{F32, Float(-2.5), "c0200000"},
		{F64, Double(1), "3ff0000000000000"},
		{F64, Double(0.1), "3fb999999999999a"},
	}
	for _, tt := range tests {
		buf := must(tt.codec.Serial(tt.value, []byte{0xEE}))
		if a, e := hex.EncodeToString(buf), "ee"+tt.hex; a != e {
			t.Errorf("** %s.Serial(%s) = %s, wanted %s", tt.codec.Name(), Dump(tt.value), a, e)
			continue
		}
		c := MakeCursor(unhex(tt.hex))
		v := must(tt.codec.Parse(&c))
		if !Equal(v, tt.value) {
			t.Errorf("** %s.Parse(%s) = %s, wanted %s", tt.codec.Name(), tt.hex, Dump(v), Dump(tt.value))
		}
	}
}

func TestNumeric_Truncated(t *testing.T) {
	for _, codec := range []interface {
		Codec
		Width() int
	}{U8, U16, U32, U64, I8, I16, I32, I64, F32, F64} {
		buf := make([]byte, codec.Width()-1)
		c := MakeCursor(buf)
		_, err := codec.Parse(&c)
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("%s.Parse(%d bytes) err = %v, wanted ErrTruncated", codec.Name(), len(buf), err)
		}
		eq(t, c.Off(), 0)
		eq(t, c.Len(), len(buf))
	}
}

func TestNumeric_SerialTypeMismatch(t *testing.T) {
	out := []byte{1, 2}
	res, err := U16.Serial(Uint8(1), out)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("U16.Serial(u8) err = %v, wanted ErrTypeMismatch", err)
	}
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("U16.Serial(u8) err = %T, wanted *TypeError", err)
	}
	eq(t, te.Want, KindUint16)
	eq(t, te.Got, KindUint8)
	eq(t, hexstr(res), "0102")

	for _, v := range []Value{nil, Void{}, String("1"), NewObject(), Double(1)} {
		if _, err := F32.Serial(v, nil); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("** F32.Serial(%s) err = %v, wanted ErrTypeMismatch", Dump(v), err)
		}
	}
}

func TestNumeric_KindNameWidth(t *testing.T) {
	eq(t, U8.Kind(), KindUint8)
	eq(t, I64.Kind(), KindInt64)
	eq(t, F32.Kind(), KindFloat)
	eq(t, F64.Name(), "f64")
	eq(t, I16.Name(), "i16")
	eq(t, U64.Width(), 8)
	eq(t, F32.Width(), 4)
}

func TestNumeric_ReadAppend(t *testing.T) {
	buf := I16.Append(nil, -2)
	buf = U32.Append(buf, 7)
	c := MakeCursor(buf)
	eq(t, must(I16.Read(&c)), Int16(-2))
	eq(t, must(U32.Read(&c)), Uint32(7))
	eq(t, c.Len(), 0)
}

func TestNumeric_ParseText(t *testing.T) {
	c := MakeCursor(unhex("fffe" + "40600000" + "2a"))
	eq(t, must(I16.ParseText(&c)), "-2")
	eq(t, must(F32.ParseText(&c)), "3.5")
	eq(t, must(U8.ParseText(&c)), "42")
	if _, err := U8.ParseText(&c); !errors.Is(err, ErrTruncated) {
		t.Fatalf("ParseText at end err = %v, wanted ErrTruncated", err)
	}
}

func TestNumeric_ParseCount(t *testing.T) {
	tests := []struct {
		codec Counter
		hex   string
		count int
		err   error
	}{
		{U8, "05", 5, nil},
		{U16, "0100", 256, nil},
		{I8, "7f", 127, nil},
		{I8, "ff", 0, ErrInvalidCount},
		{I32, "80000000", 0, ErrInvalidCount},
		{F32, "40400000", 3, nil},
		{F32, "40600000", 0, ErrInvalidCount},
		{F64, "7ff8000000000001", 0, ErrInvalidCount},
		{U32, "0000", 0, ErrTruncated},
	}
	for _, tt := range tests {
		c := MakeCursor(unhex(tt.hex))
		n, err := tt.codec.ParseCount(&c)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("** %s.ParseCount(%s) err = %v, wanted %v", tt.codec.Name(), tt.hex, err, tt.err)
			}
			if c.Off() != 0 {
				t.Errorf("** %s.ParseCount(%s) moved cursor to %d on failure", tt.codec.Name(), tt.hex, c.Off())
			}
			continue
		}
		if err != nil || n != tt.count {
			t.Errorf("** %s.ParseCount(%s) = (%d, %v), wanted %d", tt.codec.Name(), tt.hex, n, err, tt.count)
		}
		eq(t, c.Len(), 0)
	}
}

func TestNumeric_SerialCount(t *testing.T) {
	tests := []struct {
		codec Counter
		count int
		hex   string
	}{
		{U8, 0, "00"},
		{U8, 255, "ff"},
		{U8, 256, ""},
		{U16, 300, "012c"},
		{I8, 127, "7f"},
		{I8, 128, ""},
		{I16, 200, "00c8"},
		{U32, -1, ""},
		{F32, 16777216, "4b800000"},
		{F32, 16777217, ""},
		{F64, 3, "4008000000000000"},
	}
	for _, tt := range tests {
		out := []byte{0xEE}
		res, err := tt.codec.SerialCount(tt.count, out)
		if tt.hex == "" {
			if !errors.Is(err, ErrInvalidCount) {
				t.Errorf("** %s.SerialCount(%d) err = %v, wanted ErrInvalidCount", tt.codec.Name(), tt.count, err)
			}
			eq(t, hexstr(res), "ee")
			continue
		}
		if err != nil {
			t.Errorf("** %s.SerialCount(%d) failed: %v", tt.codec.Name(), tt.count, err)
			continue
		}
		if a, e := hexstr(res), "ee"+tt.hex; a != e {
			t.Errorf("** %s.SerialCount(%d) = %s, wanted %s", tt.codec.Name(), tt.count, a, e)
		}
	}
}
