package protodef

import (
	"log/slog"
	"strconv"
	"strings"
)

// Dump renders v on one line for logs and test failures, for example
// {id: u16(7), name: "bob", tags: [u8(1), u8(2)]}. Object keys are sorted.
func Dump(v Value) string {
	var buf strings.Builder
	dump(&buf, v)
	return buf.String()
}

func dump(buf *strings.Builder, v Value) {
	switch v := v.(type) {
	case nil:
		buf.WriteString("<nil>")
	case *Object:
		buf.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(k)
			buf.WriteString(": ")
			dump(buf, v.fields[k])
		}
		buf.WriteByte('}')
	case *Array:
		buf.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				buf.WriteString(", ")
			}
			dump(buf, item)
		}
		buf.WriteByte(']')
	case String:
		buf.WriteString(strconv.Quote(string(v)))
	case Bool:
		buf.WriteString(Text(v))
	case Buffer:
		buf.WriteString("buffer(")
		buf.WriteString(hexstr(v))
		buf.WriteByte(')')
	case Void:
		buf.WriteString("void")
	default:
		buf.WriteString(v.Kind().String())
		buf.WriteByte('(')
		buf.WriteString(Text(v))
		buf.WriteByte(')')
	}
}

// Attr returns a log attribute holding Dump(v).
func Attr(key string, v Value) slog.Attr {
	return slog.String(key, Dump(v))
}

func hexAttr(key string, b []byte) slog.Attr {
	return slog.String(key, hexstr(b))
}

func (o *Object) String() string { return Dump(o) }
func (a *Array) String() string  { return Dump(a) }

func (o *Object) LogValue() slog.Value { return slog.StringValue(Dump(o)) }
func (a *Array) LogValue() slog.Value  { return slog.StringValue(Dump(a)) }

// LogValue lets a DataError be logged as a group carrying the offset and a
// hex window around it.
func (e *DataError) LogValue() slog.Value {
	lo, hi := max(e.Off-8, 0), min(e.Off+8, len(e.Data))
	if lo > hi {
		lo = hi
	}
	return slog.GroupValue(
		slog.String("msg", e.Msg),
		slog.Int("off", e.Off),
		hexAttr("near", e.Data[lo:hi]),
		slog.Any("err", e.Err),
	)
}
