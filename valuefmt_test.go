package valuefmt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/format"
	"github.com/signadot/valuefmt/value"
)

func doc() *value.Value {
	return value.FromMap(map[string]*value.Value{
		"name": value.FromString("svc"),
		"port": value.FromI64(8080),
		"tags": value.Array(value.FromString("a"), value.FromString("b")),
		"limits": value.FromMap(map[string]*value.Value{
			"cpu": value.FromF64(0.5),
		}),
	})
}

func TestRoundTrip(t *testing.T) {
	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			d, err := Dump(f, doc())
			if err != nil {
				t.Fatal(err)
			}
			got, err := Load(f, d)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(doc()) {
				t.Errorf("got %s, want %s", got, doc())
			}
		})
	}
}

func TestConvert(t *testing.T) {
	in := []byte("a: 1\nb: [true, null]\n")
	out, err := Convert(format.YAMLFormat, format.JSONFormat, in)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}"
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}

func TestBadFormat(t *testing.T) {
	_, err := Load(format.Format(42), nil)
	if !errors.Is(err, apperr.ErrFormat) || !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v, want bad format", err)
	}
	if _, err := Dump(format.Format(42), value.Null()); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v, want bad format", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "x.toml")
	if err := os.WriteFile(p, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := Get(v, "/a"); !ok || !got.Equal(value.FromI64(1)) {
		t.Errorf("got %s %v, want I64(1)", got, ok)
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, apperr.ErrIO) {
		t.Errorf("got %v, want ErrIO", err)
	}
	if _, err := LoadFile(filepath.Join(dir, "x.txt")); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
}

func TestMergeAll(t *testing.T) {
	a := value.FromMap(map[string]*value.Value{"x": value.FromI64(1)})
	b := value.FromMap(map[string]*value.Value{"y": value.FromI64(2)})
	c := value.FromMap(map[string]*value.Value{"x": value.FromI64(3)})
	got, err := MergeAll(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	want := value.FromMap(map[string]*value.Value{"x": value.FromI64(3), "y": value.FromI64(2)})
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
	if !a.Equal(value.FromMap(map[string]*value.Value{"x": value.FromI64(1)})) {
		t.Errorf("first argument modified: %s", a)
	}
	if got, _ := MergeAll(); !got.IsNull() {
		t.Errorf("got %s, want Null", got)
	}
	if _, err := MergeAll(a, value.Array()); err == nil {
		t.Errorf("got nil error merging array into object")
	}
}

func TestPatch(t *testing.T) {
	got, err := Patch(doc(), []byte(`[{"op": "replace", "path": "/port", "value": 9090}]`), false)
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := Get(got, "/port"); !p.Equal(value.FromI64(9090)) {
		t.Errorf("got %s, want I64(9090)", p)
	}
	got, err = Patch(doc(), []byte(`{"tags": null}`), true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Get(got, "/tags"); ok {
		t.Errorf("tags still present after merge patch")
	}
}
