package binval

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/tree"
	"github.com/signadot/valuefmt/value"

	"github.com/vmihailenco/msgpack/v5"
)

func TestRoundTripLossless(t *testing.T) {
	v := value.FromMap(map[string]*value.Value{
		"null": value.Null(),
		"bool": value.FromBool(true),
		"i32":  value.FromI32(math.MinInt32),
		"i64":  value.FromI64(1),
		"u32":  value.FromU32(math.MaxUint32),
		"u64":  value.FromU64(math.MaxUint64),
		"f32":  value.FromF32(0.1),
		"f64":  value.FromF64(0.1),
		"str":  value.FromString("s"),
		"bin":  value.FromBinary([]byte{0, 1, 2}),
		"none": value.FromBinary(nil),
		"arr":  value.Array(value.FromI32(0), value.Object()),
	})
	d, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(v, back) {
		t.Errorf("got %s, want %s", back, v)
	}
	for i, k := range v.Fields {
		b, _ := back.Get(k)
		if b.Type != v.Values[i].Type {
			t.Errorf("%s: got type %s, want %s", k, b.Type, v.Values[i].Type)
		}
	}
}

func TestCalendarAsString(t *testing.T) {
	d, _ := value.ParseDate("2024-01-31")
	n, err := FromValue(d)
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != StringKind || n.Str != "2024-01-31" {
		t.Errorf("got %v, want String 2024-01-31", n)
	}
}

func TestForeignEncoding(t *testing.T) {
	// produced by a generic encoder using compact integers
	d, err := msgpack.Marshal(map[string]any{
		"small": 5,
		"neg":   -3,
		"u16":   uint16(40000),
		"big":   uint64(math.MaxUint64),
		"i64":   int64(math.MinInt64),
		"bin":   []byte("x"),
	})
	if err != nil {
		t.Fatal(err)
	}
	v, err := Unmarshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want := `Object{big: U64(18446744073709551615), bin: Binary(78), i64: I64(-9223372036854775808), neg: I32(-3), small: I32(5), u16: U32(40000)}`
	if got := v.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		name string
		n    *Node
	}{
		{"ext", FromArray(FromExt(3, []byte{1}))},
		{"int key", FromEntries(Entry{Key: FromInt32(1), Value: Nil()})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Encode(tt.n)
			if err != nil {
				t.Fatal(err)
			}
			n, err := Decode(d)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.n, n); diff != "" {
				t.Errorf("codec (-want +got):\n%s", diff)
			}
			if _, err := ToValue(n); !errors.Is(err, value.ErrUnsupportedConversion) {
				t.Errorf("got %v, want %v", err, value.ErrUnsupportedConversion)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	good, _ := Encode(FromString("abc"))
	tests := [][]byte{
		{},
		good[:len(good)-1],
		append(bytes.Clone(good), 0xc0),
		{0xc1},
		{0xc9, 0xff, 0xff, 0xff, 0xf0, 0x01},
	}
	for _, d := range tests {
		if _, err := Decode(d); !errors.Is(err, apperr.ErrDeserialize) {
			t.Errorf("Decode(%x) = %v, want %v", d, err, apperr.ErrDeserialize)
		}
	}
}

func TestMergeGet(t *testing.T) {
	base := FromEntries(
		Entry{FromString("a"), FromArray(FromInt64(1), FromInt64(2))},
		Entry{FromString("b"), FromInt64(3)},
		Entry{FromString("e"), FromEntries(
			Entry{FromString("f"), FromString("456")},
			Entry{FromString("h"), FromInt64(23)},
		)},
	)
	in := FromEntries(
		Entry{FromString("a"), FromArray(FromInt64(3))},
		Entry{FromString("d"), FromInt64(4)},
		Entry{FromString("e"), FromEntries(
			Entry{FromString("f"), FromString("123")},
			Entry{FromString("g"), FromInt64(4)},
		)},
	)
	got, err := Merge(&base, in)
	if err != nil {
		t.Fatal(err)
	}
	v, err := ToValue(got)
	if err != nil {
		t.Fatal(err)
	}
	want := `Object{a: Array[I64(1), I64(2), I64(3)], b: I64(3), d: I64(4), e: Object{f: String("123"), g: I64(4), h: I64(23)}}`
	if v.String() != want {
		t.Errorf("got %s, want %s", v, want)
	}
	if f, ok := Get(base, "/e/f"); !ok || f.Str != "123" {
		t.Errorf("got %v, %v, want 123", f, ok)
	}
	if _, ok := Get(base, "/a/+1"); ok {
		t.Errorf("signed index accepted")
	}
	if _, err := Merge(&base, FromUint32(1)); !errors.Is(err, tree.ErrTypeConflict) {
		t.Errorf("got %v, want %v", err, tree.ErrTypeConflict)
	}
}
