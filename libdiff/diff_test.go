package libdiff

import (
	"testing"

	"github.com/signadot/valuefmt/value"

	"github.com/google/go-cmp/cmp"
)

func ints(xs ...int64) *value.Value {
	res := value.Array()
	for _, x := range xs {
		res.Append(value.FromI64(x))
	}
	return res
}

func render(cs []Change) []string {
	res := make([]string, len(cs))
	for i := range cs {
		res[i] = cs[i].String()
	}
	return res
}

func TestDiff(t *testing.T) {
	obj := func(kv ...any) *value.Value {
		res := value.Object()
		for i := 0; i < len(kv); i += 2 {
			res.Set(kv[i].(string), kv[i+1].(*value.Value))
		}
		return res
	}
	tests := []struct {
		name     string
		from, to *value.Value
		want     []string
	}{
		{
			name: "equal",
			from: obj("a", ints(1, 2)),
			to:   obj("a", ints(1, 2)),
			want: []string{},
		},
		{
			name: "scalar",
			from: value.FromI64(1),
			to:   value.FromString("1"),
			want: []string{`~ /: 1 -> "1"`},
		},
		{
			name: "fields",
			from: obj("a", value.FromI64(1), "b", value.FromI64(2)),
			to:   obj("b", value.FromI64(3), "c", value.FromI64(4)),
			want: []string{"- /a: 1", "~ /b: 2 -> 3", "+ /c: 4"},
		},
		{
			name: "nested",
			from: obj("a", obj("x/y", value.FromBool(true))),
			to:   obj("a", obj("x/y", value.FromBool(false))),
			want: []string{"~ /a/x~1y: true -> false"},
		},
		{
			name: "array replace",
			from: ints(1, 2, 3),
			to:   ints(1, 4, 3),
			want: []string{"~ /1: 2 -> 4"},
		},
		{
			name: "array delete",
			from: ints(1, 2, 3),
			to:   ints(2, 3),
			want: []string{"- /0: 1"},
		},
		{
			name: "array insert",
			from: ints(1, 3),
			to:   ints(1, 2, 3),
			want: []string{"+ /1: 2"},
		},
		{
			name: "array of objects",
			from: value.Array(obj("k", value.FromI64(1))),
			to:   value.Array(obj("k", value.FromI64(2))),
			want: []string{"~ /0/k: 1 -> 2"},
		},
		{
			name: "nil is null",
			from: nil,
			to:   value.Null(),
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(Diff(tt.from, tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestReport(t *testing.T) {
	from := value.FromMap(map[string]*value.Value{"a": value.FromI64(1)})
	to := value.Object()
	got := Report(Diff(from, to))
	want := value.Array(value.FromMap(map[string]*value.Value{
		"op":   value.FromString("delete"),
		"path": value.FromString("/a"),
		"from": value.FromI64(1),
	}))
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestLines(t *testing.T) {
	from := "a: 1\nb: 2\nc: 3\n"
	to := "a: 1\nb: 5\nc: 3\n"
	want := " a: 1\n-b: 2\n+b: 5\n c: 3\n"
	got := Lines(from, to)
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if !Changed(got) {
		t.Errorf("got unchanged, want changed")
	}
	if Changed(Lines(from, from)) {
		t.Errorf("got changed, want unchanged")
	}
}
