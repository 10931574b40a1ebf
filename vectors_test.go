package protodef

import (
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type wireVector struct {
	Codec        string `yaml:"codec"`
	Hex          string `yaml:"hex"`
	Text         string `yaml:"text"`
	Error        string `yaml:"error"`
	Noncanonical bool   `yaml:"noncanonical"`
}

var vectorErrors = map[string]error{
	"truncated":     ErrTruncated,
	"overflow":      ErrVarIntOverflow,
	"invalid_bool":  ErrInvalidBool,
	"invalid_utf8":  ErrInvalidUTF8,
	"unterminated":  ErrUnterminatedString,
	"invalid_count": ErrInvalidCount,
}

func loadVectors(t *testing.T) []wireVector {
	raw, err := os.ReadFile("testdata/vectors.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var vectors []wireVector
	if err := yaml.Unmarshal(raw, &vectors); err != nil {
		t.Fatalf("testdata/vectors.yaml: %v", err)
	}
	if len(vectors) == 0 {
		t.Fatalf("testdata/vectors.yaml has no vectors")
	}
	return vectors
}

// vectorCodec resolves names like "u16" or "pstring(varint)".
func vectorCodec(name string) (Codec, bool) {
	outer, inner, ok := strings.Cut(name, "(")
	if !ok {
		return Lookup(name)
	}
	count, ok := LookupCounter(strings.TrimSuffix(inner, ")"))
	if !ok {
		return nil, false
	}
	switch outer {
	case "buffer":
		return Prefixed(count), true
	case "pstring":
		return PrefixedString(count), true
	}
	return nil, false
}

func TestWireVectors(t *testing.T) {
	for _, vec := range loadVectors(t) {
		t.Run(vec.Codec+"/"+vec.Hex, func(t *testing.T) {
			codec, ok := vectorCodec(vec.Codec)
			if !ok {
				t.Fatalf("unknown codec %q", vec.Codec)
			}
			input := unhex(vec.Hex)
			c := MakeCursor(input)
			v, err := codec.Parse(&c)

			if vec.Error != "" {
				want, ok := vectorErrors[vec.Error]
				if !ok {
					t.Fatalf("unknown error name %q", vec.Error)
				}
				if !errors.Is(err, want) {
					t.Fatalf("Parse err = %v, wanted %v", err, want)
				}
				eq(t, c.Off(), 0)
				return
			}

			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			eq(t, c.Len(), 0)
			eq(t, v.Kind(), codec.Kind())
			eq(t, Text(v), vec.Text)

			buf, err := codec.Serial(v, nil)
			if err != nil {
				t.Fatalf("Serial(%s) failed: %v", Dump(v), err)
			}
			if !vec.Noncanonical {
				eq(t, hex.EncodeToString(buf), vec.Hex)
			}
			c = MakeCursor(buf)
			eqValue(t, must(codec.Parse(&c)), v)
		})
	}
}
