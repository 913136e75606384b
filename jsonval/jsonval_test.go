package jsonval

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/tree"
	"github.com/signadot/valuefmt/value"
)

func TestRoundTrip(t *testing.T) {
	vs := []*value.Value{
		value.Null(),
		value.FromBool(true),
		value.FromI64(math.MinInt64),
		value.FromU64(math.MaxUint64),
		value.FromF64(1),
		value.FromF64(-2.5e-300),
		value.FromString("héllo\n"),
		value.Array(value.FromI64(1), value.Array(), value.Object()),
		value.FromMap(map[string]*value.Value{
			"a/b": value.FromString("x"),
			"n":   value.Null(),
		}),
	}
	for _, v := range vs {
		t.Run(v.String(), func(t *testing.T) {
			n, err := FromValue(v)
			if err != nil {
				t.Fatal(err)
			}
			back, err := ToValue(n)
			if err != nil {
				t.Fatal(err)
			}
			if !value.Equal(v, back) {
				t.Errorf("tree: got %s, want %s", back, v)
			}
			d, err := Marshal(v)
			if err != nil {
				t.Fatal(err)
			}
			back, err = Unmarshal(d)
			if err != nil {
				t.Fatal(err)
			}
			if !value.Equal(v, back) {
				t.Errorf("text %s: got %s, want %s", d, back, v)
			}
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`1`, "I64(1)"},
		{`-1`, "I64(-1)"},
		{`9223372036854775807`, "I64(9223372036854775807)"},
		{`9223372036854775808`, "U64(9223372036854775808)"},
		{`18446744073709551615`, "U64(18446744073709551615)"},
		{`18446744073709551616`, "F64(1.8446744073709552e+19)"},
		{`1.0`, "F64(1)"},
		{`2E2`, "F64(200)"},
	}
	for _, tt := range tests {
		v, err := Unmarshal([]byte(tt.in))
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if got := v.String(); got != tt.want {
			t.Errorf("Unmarshal(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWiden(t *testing.T) {
	v := value.Array(value.FromI32(-3), value.FromU32(3), value.FromF32(0.5))
	n, err := FromValue(v)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{int64(-3), uint64(3), json.Number("0.5")}
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	d, err := Marshal(value.FromDate(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `"2020-01-02"` {
		t.Errorf("got %s, want %q", d, "2020-01-02")
	}
}

func TestUnsupported(t *testing.T) {
	v := value.FromMap(map[string]*value.Value{
		"x": value.Array(value.Null(), value.FromBinary([]byte{1})),
	})
	_, err := FromValue(v)
	if !errors.Is(err, value.ErrUnsupportedConversion) || !errors.Is(err, apperr.ErrConvert) {
		t.Fatalf("got %v, want %v", err, value.ErrUnsupportedConversion)
	}
	var ce *value.ConversionError
	if !errors.As(err, &ce) || ce.Pointer != "/x/1" || ce.Format != "json" {
		t.Errorf("got %+v", ce)
	}
	if _, err := FromValue(value.FromF64(math.NaN())); !errors.Is(err, value.ErrUnsupportedConversion) {
		t.Errorf("got %v, want %v", err, value.ErrUnsupportedConversion)
	}
	if _, err := ToValue(map[string]any{"c": make(chan int)}); !errors.Is(err, value.ErrUnsupportedConversion) {
		t.Errorf("got %v, want %v", err, value.ErrUnsupportedConversion)
	}
	if _, err := ToValue(json.Number("bogus")); !errors.Is(err, apperr.ErrInternal) {
		t.Errorf("got %v, want %v", err, apperr.ErrInternal)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{`{`, `1 2`, ``} {
		if _, err := Decode([]byte(in)); !errors.Is(err, apperr.ErrDeserialize) {
			t.Errorf("Decode(%q) = %v, want %v", in, err, apperr.ErrDeserialize)
		}
	}
}

func TestMergeGet(t *testing.T) {
	base, err := Decode([]byte(`{"a":[1,2],"b":3,"e":{"f":"456","h":23}}`))
	if err != nil {
		t.Fatal(err)
	}
	in, err := Decode([]byte(`{"a":[3],"d":4,"e":{"f":"123","g":4}}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Merge(&base, in)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Decode([]byte(`{"a":[1,2,3],"b":3,"d":4,"e":{"f":"123","g":4,"h":23}}`))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("base (-want +got):\n%s", diff)
	}
	if f, ok := Get(got, "/e/f"); !ok || f != "123" {
		t.Errorf("got %v, %v, want 123", f, ok)
	}

	scalar := any(json.Number("5"))
	if _, err := Merge(&base, scalar); !errors.Is(err, tree.ErrTypeConflict) {
		t.Errorf("got %v, want %v", err, tree.ErrTypeConflict)
	}
	if _, err := Merge(&scalar, map[string]any{"a": true}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(any(map[string]any{"a": true}), scalar); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPatch(t *testing.T) {
	v, err := Unmarshal([]byte(`{"a":{"b":1},"l":[1]}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Patch(v, []byte(`[{"op":"replace","path":"/a/b","value":2},{"op":"add","path":"/l/-","value":"x"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if want := `Object{a: Object{b: I64(2)}, l: Array[I64(1), String("x")]}`; got.String() != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, err := Patch(v, []byte(`{`)); !errors.Is(err, apperr.ErrParse) {
		t.Errorf("got %v, want %v", err, apperr.ErrParse)
	}
	if _, err := Patch(v, []byte(`[{"op":"remove","path":"/nope"}]`)); !errors.Is(err, apperr.ErrData) {
		t.Errorf("got %v, want %v", err, apperr.ErrData)
	}

	mp, err := MergePatch(v, []byte(`{"a":null,"l":[2]}`))
	if err != nil {
		t.Fatal(err)
	}
	if want := `Object{l: Array[I64(2)]}`; mp.String() != want {
		t.Errorf("got %s, want %s", mp, want)
	}
	d, err := Diff(v, mp)
	if err != nil {
		t.Fatal(err)
	}
	again, err := MergePatch(v, d)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(again, mp) {
		t.Errorf("got %s, want %s", again, mp)
	}
}
