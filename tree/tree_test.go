package tree

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/valuefmt/apperr"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestDeepMerge(t *testing.T) {
	base := decode(t, `{"a":[1,2],"b":3,"e":{"f":"456","h":23}}`)
	in := decode(t, `{"a":[3],"d":4,"e":{"f":"123","g":4}}`)
	got, err := Merge[any](Native{}, base, in)
	if err != nil {
		t.Fatal(err)
	}
	want := decode(t, `{"a":[1,2,3],"b":3,"d":4,"e":{"f":"123","g":4,"h":23}}`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	f, ok := Get[any](Native{}, got, "/e/f")
	if !ok || f != "123" {
		t.Errorf("got %v, %v, want %q", f, ok, "123")
	}
	if diff := cmp.Diff(decode(t, `{"a":[3],"d":4,"e":{"f":"123","g":4}}`), in); diff != "" {
		t.Errorf("incoming modified (-want +got):\n%s", diff)
	}
}

func TestMergeCases(t *testing.T) {
	tests := []struct {
		name     string
		base, in string
		want     string
		conflict bool
	}{
		{name: "object into scalar", base: `5`, in: `{"a":1}`, want: `{"a":1}`},
		{name: "scalar into object", base: `{"a":1}`, in: `5`, conflict: true},
		{name: "array into object", base: `{"a":1}`, in: `[1]`, conflict: true},
		{name: "array concat", base: `[1,2]`, in: `[3]`, want: `[1,2,3]`},
		{name: "scalar appended", base: `[1,2]`, in: `3`, want: `[1,2,3]`},
		{name: "object appended", base: `[]`, in: `{"x":null}`, want: `[{"x":null}]`},
		{name: "null replaced", base: `null`, in: `[1]`, want: `[1]`},
		{name: "scalar replaced", base: `"s"`, in: `true`, want: `true`},
		{name: "nested conflict", base: `{"a":{"b":{}}}`, in: `{"a":{"b":1}}`, conflict: true},
		{name: "nested replace", base: `{"a":{"b":1}}`, in: `{"a":{"b":{"c":2}}}`, want: `{"a":{"b":{"c":2}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge[any](Native{}, decode(t, tt.base), decode(t, tt.in))
			if tt.conflict {
				var tce *TypeConflictError
				if !errors.As(err, &tce) {
					t.Fatalf("got %v, want *TypeConflictError", err)
				}
				if !errors.Is(err, apperr.ErrMerge) {
					t.Errorf("conflict does not match apperr.ErrMerge")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(decode(t, tt.want), got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestTypeConflictMessage(t *testing.T) {
	_, err := Merge[any](Native{}, decode(t, `{"a/b":{"c":{}}}`), decode(t, `{"a/b":{"c":[1]}}`))
	var tce *TypeConflictError
	if !errors.As(err, &tce) {
		t.Fatalf("got %v, want *TypeConflictError", err)
	}
	want := TypeConflictError{Pointer: "/a~1b/c", Base: "Object", Incoming: "Array"}
	if diff := cmp.Diff(want, *tce); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMergeTooDeep(t *testing.T) {
	var base, in any = map[string]any{}, map[string]any{}
	b, i := base, in
	for range MaxDepth + 2 {
		nb, ni := map[string]any{}, map[string]any{}
		b.(map[string]any)["k"] = nb
		i.(map[string]any)["k"] = ni
		b, i = nb, ni
	}
	if _, err := Merge[any](Native{}, base, in); !errors.Is(err, ErrTooDeep) {
		t.Errorf("got %v, want %v", err, ErrTooDeep)
	}
}

func TestGet(t *testing.T) {
	root := decode(t, `{"a":[10,20],"":{"":1},"m~n":2,"x/y":3,"~1":4,"s":"str"}`)
	tests := []struct {
		pointer string
		want    any
		ok      bool
	}{
		{"", root, true},
		{"/a/0", 10.0, true},
		{"/a/1", 20.0, true},
		{"/a/2", nil, false},
		{"/a/+1", nil, false},
		{"/a/01", nil, false},
		{"/a/-1", nil, false},
		{"/a/", nil, false},
		{"/a/99999999999999999999999", nil, false},
		{"a", nil, false},
		{"/", map[string]any{"": 1.0}, true},
		{"//", 1.0, true},
		{"/m~0n", 2.0, true},
		{"/x~1y", 3.0, true},
		{"/~01", 4.0, true},
		{"/s/0", nil, false},
		{"/missing", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.pointer, func(t *testing.T) {
			got, ok := Get[any](Native{}, root, tt.pointer)
			if ok != tt.ok {
				t.Fatalf("got ok=%v, want %v", ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		tok  string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"7", 7, true},
		{"120", 120, true},
		{"00", 0, false},
		{"01", 0, false},
		{"+1", 0, false},
		{"-0", 0, false},
		{"1e2", 0, false},
		{"", 0, false},
		{" 1", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseIndex(tt.tok)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseIndex(%q) = %d, %v, want %d, %v", tt.tok, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		raw, esc string
	}{
		{"a", "a"},
		{"a/b", "a~1b"},
		{"m~n", "m~0n"},
		{"~1", "~01"},
		{"/~", "~1~0"},
	}
	for _, tt := range tests {
		if got := Escape(tt.raw); got != tt.esc {
			t.Errorf("Escape(%q) = %q, want %q", tt.raw, got, tt.esc)
		}
		if got := Unescape(tt.esc); got != tt.raw {
			t.Errorf("Unescape(%q) = %q, want %q", tt.esc, got, tt.raw)
		}
	}
	if got := Join("a/b", "", "0"); got != "/a~1b//0" {
		t.Errorf("got %q, want %q", got, "/a~1b//0")
	}
	toks, ok := Tokens("/a~1b//0")
	if !ok {
		t.Fatal("tokens failed")
	}
	if diff := cmp.Diff([]string{"a/b", "", "0"}, toks); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
