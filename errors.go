package protodef

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated          = errors.New("protodef: truncated data")
	ErrTypeMismatch       = errors.New("protodef: type mismatch")
	ErrInvalidBool        = errors.New("protodef: invalid bool encoding")
	ErrInvalidUTF8        = errors.New("protodef: invalid utf-8")
	ErrUnterminatedString = errors.New("protodef: unterminated string")
	ErrInvalidString      = errors.New("protodef: string contains NUL")
	ErrVarIntOverflow     = errors.New("protodef: varint overflows 32 bits")
	ErrInvalidCount       = errors.New("protodef: invalid count")
	ErrNotApplicable      = errors.New("protodef: operation not applicable")
	ErrTrailingData       = errors.New("protodef: trailing data")
)

// DataError is returned by every failed parse. Data is the whole buffer the
// cursor was created over and Off is where the failed read started.
type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		if e.Err != nil {
			return fmt.Sprintf("%s at %d: %v: (%d) %x", e.Msg, e.Off, e.Err, n, e.Data)
		} else {
			return fmt.Sprintf("%s at %d: (%d) %x", e.Msg, e.Off, n, e.Data)
		}
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		if e.Err != nil {
			return fmt.Sprintf("%s at %d: %v: (%d) %x...%x", e.Msg, e.Off, e.Err, n, p, s)
		} else {
			return fmt.Sprintf("%s at %d: (%d) %x...%x", e.Msg, e.Off, n, p, s)
		}
	}
}

// TypeError is returned when a codec is asked to serialize a value of the
// wrong variant.
type TypeError struct {
	Codec string
	Want  Kind
	Got   Kind
}

func typeErr(codec string, want Kind, v Value) error {
	return &TypeError{codec, want, KindOf(v)}
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("protodef: %s cannot serialize %s, wanted %s", e.Codec, e.Got, e.Want)
}

// CountError describes a value that cannot serve as a length.
type CountError struct {
	Kind Kind
	Msg  string
}

func countErrf(kind Kind, format string, args ...any) error {
	return &CountError{kind, fmt.Sprintf(format, args...)}
}

func (e *CountError) Unwrap() error {
	return ErrInvalidCount
}

func (e *CountError) Error() string {
	return fmt.Sprintf("protodef: invalid count from %s: %s", e.Kind, e.Msg)
}

func notApplicablef(v Value, op string) error {
	return fmt.Errorf("%w: %s on %s", ErrNotApplicable, op, KindOf(v))
}
