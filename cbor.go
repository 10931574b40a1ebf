package protodef

import (
	"fmt"
	"reflect"

	cbor "github.com/fxamacker/cbor/v2"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// MarshalCBOR renders v as deterministic CBOR (sorted keys, shortest
// numbers). Like MarshalJSON it drops widths, but buffers stay byte strings
// and non-finite floats are allowed.
func MarshalCBOR(v Value) ([]byte, error) {
	return cborEnc.Marshal(plain(v))
}

// UnmarshalCBOR decodes CBOR into the widest variants: non-negative integers
// become u64, negative ones i64, floats f64 and null void. Map keys must be
// text strings.
func UnmarshalCBOR(data []byte) (Value, error) {
	var raw any
	if err := cborDec.Unmarshal(data, &raw); err != nil {
		return nil, dataErrf(data, 0, err, "failed to decode cbor")
	}
	v, err := fromPlain(raw)
	if err != nil {
		return nil, dataErrf(data, 0, err, "failed to decode cbor")
	}
	return v, nil
}

// fromPlain is the inverse of plain for the types generic decoders produce.
func fromPlain(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Void{}, nil
	case bool:
		return Bool(x), nil
	case uint64:
		return Uint64(x), nil
	case int64:
		return Int64(x), nil
	case float64:
		return Double(x), nil
	case string:
		return String(x), nil
	case []byte:
		return Buffer(x), nil
	case []any:
		a := &Array{items: make([]Value, 0, len(x))}
		for i, item := range x {
			v, err := fromPlain(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			a.items = append(a.items, v)
		}
		return a, nil
	case map[string]any:
		o := &Object{fields: make(map[string]Value, len(x))}
		for k, item := range x {
			v, err := fromPlain(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			o.fields[k] = v
		}
		return o, nil
	default:
		return nil, fmt.Errorf("%w: unsupported %T", ErrTypeMismatch, x)
	}
}
