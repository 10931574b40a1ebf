package protodef

import (
	"encoding/hex"
	"testing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Fatalf("** got %v, wanted %v", a, e)
	}
}

func eqValue(t testing.TB, a, e Value) {
	if !Equal(a, e) {
		t.Helper()
		t.Fatalf("** got %s, wanted %s", Dump(a), Dump(e))
	}
}

func unhex(s string) []byte {
	return must(hex.DecodeString(s))
}
