package protodef

import (
	"math"
	"strconv"
)

// AsCount converts a numeric value into a length. Unsigned integers always
// convert, signed integers only when non-negative, floats only when finite,
// positively signed (so -0 fails) and integral. Every other variant fails. The result must also
// fit into an int. Failures wrap ErrInvalidCount.
func AsCount(v Value) (int, error) {
	switch v := v.(type) {
	case Uint8:
		return int(v), nil
	case Uint16:
		return int(v), nil
	case Uint32:
		return uintCount(uint64(v), KindUint32)
	case Uint64:
		return uintCount(uint64(v), KindUint64)
	case Int8:
		return intCount(int64(v), KindInt8)
	case Int16:
		return intCount(int64(v), KindInt16)
	case Int32:
		return intCount(int64(v), KindInt32)
	case Int64:
		return intCount(int64(v), KindInt64)
	case Float:
		return floatCount(float64(v), KindFloat)
	case Double:
		return floatCount(float64(v), KindDouble)
	default:
		return 0, countErrf(KindOf(v), "not a number")
	}
}

func uintCount(n uint64, kind Kind) (int, error) {
	if n > math.MaxInt {
		return 0, countErrf(kind, "%d does not fit into int", n)
	}
	return int(n), nil
}

func intCount(n int64, kind Kind) (int, error) {
	if n < 0 {
		return 0, countErrf(kind, "negative value %d", n)
	}
	return uintCount(uint64(n), kind)
}

func floatCount(f float64, kind Kind) (int, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, countErrf(kind, "non-finite value %v", f)
	case math.Signbit(f):
		return 0, countErrf(kind, "negative value %v", f)
	case f != math.Trunc(f):
		return 0, countErrf(kind, "non-integral value %v", f)
	case f >= float64(math.MaxInt)+1:
		return 0, countErrf(kind, "%v does not fit into int", f)
	}
	return int(f), nil
}

// Text renders booleans, numbers and strings in canonical form; every other
// variant renders as "". Floats use the shortest decimal that round-trips,
// without an exponent; infinities are "inf" and "-inf", NaN is "NaN".
func Text(v Value) string {
	switch v := v.(type) {
	case Bool:
		return strconv.FormatBool(bool(v))
	case Uint8:
		return strconv.FormatUint(uint64(v), 10)
	case Uint16:
		return strconv.FormatUint(uint64(v), 10)
	case Uint32:
		return strconv.FormatUint(uint64(v), 10)
	case Uint64:
		return strconv.FormatUint(uint64(v), 10)
	case Int8:
		return strconv.FormatInt(int64(v), 10)
	case Int16:
		return strconv.FormatInt(int64(v), 10)
	case Int32:
		return strconv.FormatInt(int64(v), 10)
	case Int64:
		return strconv.FormatInt(int64(v), 10)
	case Float:
		return formatFloat(float64(v), 32)
	case Double:
		return formatFloat(float64(v), 64)
	case String:
		return string(v)
	default:
		return ""
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// AsText passes Text(v) through render, e.g. to derive a map key from a
// decoded field.
func AsText[T any](v Value, render func(string) T) T {
	return render(Text(v))
}
