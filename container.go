package protodef

import (
	"iter"
	"maps"
	"slices"
)

// Object maps field names to values. The zero value is an empty object.
type Object struct {
	fields map[string]Value
}

func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

// Get returns the value stored at field. Nested containers are returned by
// pointer, so they can be mutated in place.
func (o *Object) Get(field string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[field]
	return v, ok
}

// Set inserts or overwrites field. A nil value is stored as Void. Like a
// write to a nil map, Set on a nil *Object panics; the package-level Set
// reports ErrNotApplicable instead.
func (o *Object) Set(field string, v Value) {
	if o.fields == nil {
		o.fields = make(map[string]Value)
	}
	o.fields[field] = orVoid(v)
}

func (o *Object) Delete(field string) {
	if o == nil {
		return
	}
	delete(o.fields, field)
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// Keys returns field names in sorted order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(o.fields))
}

// All iterates fields in sorted key order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.Keys() {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}

// Array is an ordered sequence of values.
type Array struct {
	items []Value
}

func NewArray(items ...Value) *Array {
	a := &Array{items: make([]Value, 0, len(items))}
	a.Append(items...)
	return a
}

func (a *Array) Append(items ...Value) {
	for _, v := range items {
		a.items = append(a.items, orVoid(v))
	}
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the i-th element, or false when i is out of range.
func (a *Array) At(i int) (Value, bool) {
	if a == nil || i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

// Items returns the element slice. The caller must not retain it across
// Append calls.
func (a *Array) Items() []Value {
	if a == nil {
		return nil
	}
	return a.items
}

func (a *Array) All() iter.Seq2[int, Value] {
	return slices.All(a.Items())
}

// Get looks field up when v is an object. Any other variant simply has no
// fields, which is not an error.
func Get(v Value, field string) (Value, bool) {
	if o, ok := v.(*Object); ok {
		return o.Get(field)
	}
	return nil, false
}

// GetPath follows a chain of object fields, like a.b.c.
func GetPath(v Value, path ...string) (Value, bool) {
	for _, field := range path {
		var ok bool
		v, ok = Get(v, field)
		if !ok {
			return nil, false
		}
	}
	return v, v != nil
}

// Set stores x at field when v is an object and fails with ErrNotApplicable
// otherwise.
func Set(v Value, field string, x Value) error {
	o, ok := v.(*Object)
	if !ok || o == nil {
		return notApplicablef(v, "set "+field)
	}
	o.Set(field, x)
	return nil
}

// Append adds x to v when v is an array and fails with ErrNotApplicable
// otherwise.
func Append(v Value, x Value) error {
	a, ok := v.(*Array)
	if !ok || a == nil {
		return notApplicablef(v, "append")
	}
	a.Append(x)
	return nil
}

func AsObject(v Value) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok && o != nil
}

func AsArray(v Value) ([]Value, bool) {
	a, ok := v.(*Array)
	if !ok || a == nil {
		return nil, false
	}
	return a.items, true
}
