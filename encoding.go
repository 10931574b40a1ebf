package protodef

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = (*Object)(nil)
	_ msgpack.CustomDecoder = (*Object)(nil)
	_ msgpack.CustomEncoder = (*Array)(nil)
	_ msgpack.CustomDecoder = (*Array)(nil)
	_ json.Marshaler        = (*Object)(nil)
	_ json.Marshaler        = (*Array)(nil)
)

// MarshalMsgpack encodes v as MessagePack. Numbers keep their exact width
// (u16 is always written with the uint16 code and so on), so
// UnmarshalMsgpack returns an Equal tree.
func MarshalMsgpack(v Value) ([]byte, error) {
	return AppendMsgpack(nil, v)
}

func AppendMsgpack(buf []byte, v Value) ([]byte, error) {
	bb := bytesBuilder{buf}
	enc := msgpack.GetEncoder()
	enc.Reset(&bb)
	enc.SetSortMapKeys(true)
	err := EncodeMsgpack(enc, v)
	msgpack.PutEncoder(enc)
	if err != nil {
		return buf, err
	}
	return bb.Buf, nil
}

// UnmarshalMsgpack decodes a single MessagePack value. Positive fixints
// decode as u8, negative fixints as i8 and nil as void.
func UnmarshalMsgpack(data []byte) (Value, error) {
	var r bytes.Reader
	r.Reset(data)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	v, err := DecodeMsgpack(dec)
	msgpack.PutDecoder(dec)
	if err != nil {
		return nil, dataErrf(data, len(data)-r.Len(), err, "failed to decode msgpack")
	}
	return v, nil
}

func EncodeMsgpack(enc *msgpack.Encoder, v Value) error {
	switch v := orVoid(v).(type) {
	case *Object:
		return v.EncodeMsgpack(enc)
	case *Array:
		return v.EncodeMsgpack(enc)
	case Bool:
		return enc.EncodeBool(bool(v))
	case Buffer:
		if v == nil {
			v = Buffer{}
		}
		return enc.EncodeBytes(v)
	case String:
		return enc.EncodeString(string(v))
	case Uint8:
		return enc.EncodeUint8(uint8(v))
	case Uint16:
		return enc.EncodeUint16(uint16(v))
	case Uint32:
		return enc.EncodeUint32(uint32(v))
	case Uint64:
		return enc.EncodeUint64(uint64(v))
	case Int8:
		return enc.EncodeInt8(int8(v))
	case Int16:
		return enc.EncodeInt16(int16(v))
	case Int32:
		return enc.EncodeInt32(int32(v))
	case Int64:
		return enc.EncodeInt64(int64(v))
	case Float:
		return enc.EncodeFloat32(float32(v))
	case Double:
		return enc.EncodeFloat64(float64(v))
	case Void:
		return enc.EncodeNil()
	default:
		panic(fmt.Errorf("unsupported value %T", v))
	}
}

func DecodeMsgpack(dec *msgpack.Decoder) (Value, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case c == msgpcode.Nil:
		return Void{}, dec.DecodeNil()
	case c == msgpcode.False || c == msgpcode.True:
		v, err := dec.DecodeBool()
		return Bool(v), err
	case c <= msgpcode.PosFixedNumHigh || c == msgpcode.Uint8:
		v, err := dec.DecodeUint8()
		return Uint8(v), err
	case c >= msgpcode.NegFixedNumLow || c == msgpcode.Int8:
		v, err := dec.DecodeInt8()
		return Int8(v), err
	case c == msgpcode.Uint16:
		v, err := dec.DecodeUint16()
		return Uint16(v), err
	case c == msgpcode.Uint32:
		v, err := dec.DecodeUint32()
		return Uint32(v), err
	case c == msgpcode.Uint64:
		v, err := dec.DecodeUint64()
		return Uint64(v), err
	case c == msgpcode.Int16:
		v, err := dec.DecodeInt16()
		return Int16(v), err
	case c == msgpcode.Int32:
		v, err := dec.DecodeInt32()
		return Int32(v), err
	case c == msgpcode.Int64:
		v, err := dec.DecodeInt64()
		return Int64(v), err
	case c == msgpcode.Float:
		v, err := dec.DecodeFloat32()
		return Float(v), err
	case c == msgpcode.Double:
		v, err := dec.DecodeFloat64()
		return Double(v), err
	case msgpcode.IsString(c):
		v, err := dec.DecodeString()
		return String(v), err
	case msgpcode.IsBin(c):
		v, err := dec.DecodeBytes()
		return Buffer(v), err
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		o := NewObject()
		return o, o.DecodeMsgpack(dec)
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		a := NewArray()
		return a, a.DecodeMsgpack(dec)
	default:
		return nil, fmt.Errorf("unsupported msgpack code %#02x", c)
	}
}

func (o *Object) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(o.Len()); err != nil {
		return err
	}
	for _, k := range o.Keys() {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := EncodeMsgpack(enc, o.fields[k]); err != nil {
			return err
		}
	}
	return nil
}

func (o *Object) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: nil map where object expected", ErrTypeMismatch)
	}
	if o.fields == nil {
		o.fields = make(map[string]Value, min(n, 1024))
	}
	for i := 0; i < n; i++ {
		k, err := dec.DecodeString()
		if err != nil {
			return err
		}
		v, err := DecodeMsgpack(dec)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		o.fields[k] = v
	}
	return nil
}

func (a *Array) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(a.Len()); err != nil {
		return err
	}
	for _, item := range a.Items() {
		if err := EncodeMsgpack(enc, item); err != nil {
			return err
		}
	}
	return nil
}

func (a *Array) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: nil array where array expected", ErrTypeMismatch)
	}
	for i := 0; i < n; i++ {
		v, err := DecodeMsgpack(dec)
		if err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
		a.items = append(a.items, v)
	}
	return nil
}

// MarshalJSON renders v as JSON. The rendering is lossy: widths are dropped,
// buffers become base64 and void becomes null. Non-finite floats fail.
func MarshalJSON(v Value) ([]byte, error) {
	return json.Marshal(plain(v))
}

func (o *Object) MarshalJSON() ([]byte, error) { return MarshalJSON(o) }
func (a *Array) MarshalJSON() ([]byte, error)  { return MarshalJSON(a) }

// plain converts v into builtin Go types for generic encoders.
func plain(v Value) any {
	switch v := orVoid(v).(type) {
	case *Object:
		m := make(map[string]any, v.Len())
		for k, fv := range v.All() {
			m[k] = plain(fv)
		}
		return m
	case *Array:
		s := make([]any, v.Len())
		for i, item := range v.Items() {
			s[i] = plain(item)
		}
		return s
	case Bool:
		return bool(v)
	case Buffer:
		return []byte(v)
	case String:
		return string(v)
	case Uint8:
		return uint8(v)
	case Uint16:
		return uint16(v)
	case Uint32:
		return uint32(v)
	case Uint64:
		return uint64(v)
	case Int8:
		return int8(v)
	case Int16:
		return int16(v)
	case Int32:
		return int32(v)
	case Int64:
		return int64(v)
	case Float:
		return float32(v)
	case Double:
		return float64(v)
	default:
		return nil
	}
}
