package encode

import (
	"math"
	"testing"
	"time"

	"github.com/signadot/valuefmt/value"
)

func sample() *value.Value {
	v := value.Object()
	v.Set("a", value.FromI64(1))
	v.Set("b", value.Array(value.FromString("x"), value.FromMap(map[string]*value.Value{
		"c": value.FromBool(true),
	})))
	v.Set("d", value.Object())
	v.Set("e", value.FromString(""))
	return v
}

func TestEncodeBlock(t *testing.T) {
	want := "a: 1\nb:\n  - x\n  - c: true\nd: {}\ne: \"\""
	if got := MustString(sample()); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeBlockIndent(t *testing.T) {
	v := value.FromMap(map[string]*value.Value{
		"a": value.FromMap(map[string]*value.Value{"b": value.Null()}),
	})
	want := "a:\n    b: null"
	if got := MustString(v, Indent(4)); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeBrackets(t *testing.T) {
	want := `{a: 1, b: [x, {c: true}], d: {}, e: ""}`
	if got := MustString(sample(), EncodeBrackets(true)); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncodeTypes(t *testing.T) {
	v := value.Array(
		value.FromI32(1),
		value.FromU64(2),
		value.FromF32(1.5),
		value.FromF64(2),
		value.FromBinary([]byte("hi")),
		value.FromDate(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
	)
	tests := []struct {
		name  string
		types bool
		want  string
	}{
		{
			name:  "plain",
			types: false,
			want:  `[1, 2, 1.5, 2.0, !binary "aGk=", !date 2024-01-02]`,
		},
		{
			name:  "typed",
			types: true,
			want:  `[!i32 1, !u64 2, !f32 1.5, 2.0, !binary "aGk=", !date 2024-01-02]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(v, EncodeBrackets(true), EncodeTypes(tt.types))
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   *value.Value
		want string
	}{
		{"nil", nil, "null"},
		{"nan", value.FromF64(math.NaN()), ".nan"},
		{"neg inf", value.FromF64(math.Inf(-1)), "-.inf"},
		{"numeric string", value.FromString("12"), `"12"`},
		{"bool string", value.FromString("true"), `"true"`},
		{"colon", value.FromString("a: b"), `"a: b"`},
		{"newline", value.FromString("a\nb"), `"a\nb"`},
		{"plain", value.FromString("hello world"), "hello world"},
		{"time", value.FromTime(time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC)), `!time "10:30:00"`},
		{"year month", value.FromYearMonth(2024, time.March), "!yearmonth 2024-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(tt.in); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: value.ObjectType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: value.I64Type, Attr: ValueColor}:    func(s string, _ ...any) string { return "(" + s + ")" },
		},
	}
	v := value.FromMap(map[string]*value.Value{"k": value.FromI64(3)})
	want := "<k>: (3)"
	if got := MustString(v, EncodeColors(c)); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNewColorsEscapesPercent(t *testing.T) {
	c := NewColors()
	got := c.Color(value.StringType, ValueColor, "100%")
	if len(got) < len("100%") {
		t.Errorf("got %q, want text containing 100%%", got)
	}
	if c.Get(value.ArrayType, FieldColor)("x") != "x" {
		t.Errorf("unmapped attribute should use the default")
	}
}
