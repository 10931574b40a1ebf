package protodef

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are the same variant with equal payloads.
// Floats are compared by bit pattern, so a NaN equals an identical NaN.
// A nil Value equals Void.
func Equal(a, b Value) bool {
	a, b = orVoid(a), orVoid(b)
	switch a := a.(type) {
	case *Object:
		bo, ok := b.(*Object)
		if !ok || a.Len() != bo.Len() {
			return false
		}
		for k, av := range a.All() {
			bv, ok := bo.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case *Array:
		ba, ok := b.(*Array)
		if !ok || a.Len() != ba.Len() {
			return false
		}
		for i, av := range a.Items() {
			if !Equal(av, ba.items[i]) {
				return false
			}
		}
		return true
	case Buffer:
		bb, ok := b.(Buffer)
		return ok && bytes.Equal(a, bb)
	case Float:
		bf, ok := b.(Float)
		return ok && math.Float32bits(float32(a)) == math.Float32bits(float32(bf))
	case Double:
		bd, ok := b.(Double)
		return ok && math.Float64bits(float64(a)) == math.Float64bits(float64(bd))
	default:
		return a == b
	}
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch v := v.(type) {
	case *Object:
		if v == nil {
			return v
		}
		o := &Object{fields: make(map[string]Value, len(v.fields))}
		for k, fv := range v.fields {
			o.fields[k] = Clone(fv)
		}
		return o
	case *Array:
		if v == nil {
			return v
		}
		a := &Array{items: make([]Value, len(v.items))}
		for i, item := range v.items {
			a.items[i] = Clone(item)
		}
		return a
	case Buffer:
		return Buffer(bytes.Clone(v))
	default:
		return v
	}
}
