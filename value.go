package protodef

// Kind identifies a Value variant. String returns the protodef type name.
type Kind uint8

const (
	KindVoid Kind = iota
	KindObject
	KindArray
	KindBool
	KindBuffer
	KindString
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat
	KindDouble
)

var kindNames = [...]string{
	KindVoid:   "void",
	KindObject: "object",
	KindArray:  "array",
	KindBool:   "bool",
	KindBuffer: "buffer",
	KindString: "string",
	KindUint8:  "u8",
	KindUint16: "u16",
	KindUint32: "u32",
	KindUint64: "u64",
	KindInt8:   "i8",
	KindInt16:  "i16",
	KindInt32:  "i32",
	KindInt64:  "i64",
	KindFloat:  "f32",
	KindDouble: "f64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?kind"
}

func (k Kind) IsInteger() bool {
	return k >= KindUint8 && k <= KindInt64
}

func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

func (k Kind) IsFloat() bool {
	return k == KindFloat || k == KindDouble
}

func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}

// Value is one node of a decoded tree. The set of implementations is closed:
// *Object, *Array, Bool, Buffer, String, Uint8, Uint16, Uint32, Uint64, Int8,
// Int16, Int32, Int64, Float, Double and Void.
//
// Containers own their children. Placing the same *Object or *Array under two
// parents is not supported; use Clone for that.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	Bool   bool
	Buffer []byte
	String string
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
	Int8   int8
	Int16  int16
	Int32  int32
	Int64  int64
	Float  float32
	Double float64
	Void   struct{}
)

func (Bool) Kind() Kind    { return KindBool }
func (Buffer) Kind() Kind  { return KindBuffer }
func (String) Kind() Kind  { return KindString }
func (Uint8) Kind() Kind   { return KindUint8 }
func (Uint16) Kind() Kind  { return KindUint16 }
func (Uint32) Kind() Kind  { return KindUint32 }
func (Uint64) Kind() Kind  { return KindUint64 }
func (Int8) Kind() Kind    { return KindInt8 }
func (Int16) Kind() Kind   { return KindInt16 }
func (Int32) Kind() Kind   { return KindInt32 }
func (Int64) Kind() Kind   { return KindInt64 }
func (Float) Kind() Kind   { return KindFloat }
func (Double) Kind() Kind  { return KindDouble }
func (Void) Kind() Kind    { return KindVoid }
func (*Object) Kind() Kind { return KindObject }
func (*Array) Kind() Kind  { return KindArray }

func (Bool) sealed()    {}
func (Buffer) sealed()  {}
func (String) sealed()  {}
func (Uint8) sealed()   {}
func (Uint16) sealed()  {}
func (Uint32) sealed()  {}
func (Uint64) sealed()  {}
func (Int8) sealed()    {}
func (Int16) sealed()   {}
func (Int32) sealed()   {}
func (Int64) sealed()   {}
func (Float) sealed()   {}
func (Double) sealed()  {}
func (Void) sealed()    {}
func (*Object) sealed() {}
func (*Array) sealed()  {}

// KindOf is like v.Kind() but reports KindVoid for a nil interface.
func KindOf(v Value) Kind {
	if v == nil {
		return KindVoid
	}
	return v.Kind()
}

func orVoid(v Value) Value {
	if v == nil {
		return Void{}
	}
	return v
}
