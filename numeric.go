package protodef

import "math"

type (
	// Integer is the set of fixed-width integer variants.
	Integer interface {
		Value
		Uint8 | Uint16 | Uint32 | Uint64 | Int8 | Int16 | Int32 | Int64
	}
	// Number is the set of fixed-width numeric variants.
	Number interface {
		Value
		Uint8 | Uint16 | Uint32 | Uint64 | Int8 | Int16 | Int32 | Int64 | Float | Double
	}
)

// scalarConverter reinterprets a big-endian bit pattern as T and back.
// fromCount is a numeric (not bitwise) conversion.
type scalarConverter[T Number] interface {
	fromBits(bits uint64) T
	toBits(v T) uint64
	fromCount(n uint64) T
}

type intConverter[T Integer] struct{}

func (intConverter[T]) fromBits(bits uint64) T { return T(bits) }
func (intConverter[T]) toBits(v T) uint64      { return uint64(v) }
func (intConverter[T]) fromCount(n uint64) T   { return T(n) }

type float32Converter struct{}

func (float32Converter) fromBits(bits uint64) Float {
	return Float(math.Float32frombits(uint32(bits)))
}
func (float32Converter) toBits(v Float) uint64 {
	return uint64(math.Float32bits(float32(v)))
}
func (float32Converter) fromCount(n uint64) Float {
	return Float(n)
}

type float64Converter struct{}

func (float64Converter) fromBits(bits uint64) Double {
	return Double(math.Float64frombits(bits))
}
func (float64Converter) toBits(v Double) uint64 {
	return math.Float64bits(float64(v))
}
func (float64Converter) fromCount(n uint64) Double {
	return Double(n)
}

// Numeric is the big-endian codec of one fixed-width numeric kind.
type Numeric[T Number] struct {
	width int
	conv  scalarConverter[T]
}

var (
	U8  = Numeric[Uint8]{1, intConverter[Uint8]{}}
	U16 = Numeric[Uint16]{2, intConverter[Uint16]{}}
	U32 = Numeric[Uint32]{4, intConverter[Uint32]{}}
	U64 = Numeric[Uint64]{8, intConverter[Uint64]{}}
	I8  = Numeric[Int8]{1, intConverter[Int8]{}}
	I16 = Numeric[Int16]{2, intConverter[Int16]{}}
	I32 = Numeric[Int32]{4, intConverter[Int32]{}}
	I64 = Numeric[Int64]{8, intConverter[Int64]{}}
	F32 = Numeric[Float]{4, float32Converter{}}
	F64 = Numeric[Double]{8, float64Converter{}}
)

func (n Numeric[T]) Kind() Kind {
	var zero T
	return zero.Kind()
}

func (n Numeric[T]) Name() string {
	return n.Kind().String()
}

// Width is the encoded size in bytes.
func (n Numeric[T]) Width() int {
	return n.width
}

func (n Numeric[T]) Read(c *Cursor) (T, error) {
	b, err := c.Read(n.width)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.conv.fromBits(bigEndianBits(b)), nil
}

func (n Numeric[T]) Append(out []byte, v T) []byte {
	return appendBigEndian(out, n.conv.toBits(v), n.width)
}

func (n Numeric[T]) Parse(c *Cursor) (Value, error) {
	v, err := n.Read(c)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (n Numeric[T]) Serial(v Value, out []byte) ([]byte, error) {
	x, ok := v.(T)
	if !ok {
		return out, typeErr(n.Name(), n.Kind(), v)
	}
	return n.Append(out, x), nil
}

// ParseText reads a value and returns its canonical text, see Text.
func (n Numeric[T]) ParseText(c *Cursor) (string, error) {
	v, err := n.Read(c)
	if err != nil {
		return "", err
	}
	return Text(v), nil
}

// ParseCount reads a value and coerces it with AsCount.
func (n Numeric[T]) ParseCount(c *Cursor) (int, error) {
	save := *c
	v, err := n.Read(c)
	if err != nil {
		return 0, err
	}
	count, err := AsCount(v)
	if err != nil {
		*c = save
		return 0, dataErrf(c.Orig, c.Off(), err, "%s count", n.Name())
	}
	return count, nil
}

// SerialCount writes count, failing with ErrInvalidCount when count is
// negative or not representable in this kind.
func (n Numeric[T]) SerialCount(count int, out []byte) ([]byte, error) {
	if count < 0 {
		return out, countErrf(n.Kind(), "negative count %d", count)
	}
	v := n.conv.fromCount(uint64(count))
	if back, err := AsCount(v); err != nil || back != count {
		return out, countErrf(n.Kind(), "count %d out of range", count)
	}
	return n.Append(out, v), nil
}
