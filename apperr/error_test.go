package apperr

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Kinds() {
		if seen[k.Code] {
			t.Errorf("duplicate code %s", k.Code)
		}
		seen[k.Code] = true
		if got := Lookup(k.Code); got != k {
			t.Errorf("Lookup(%q) = %v, want %v", k.Code, got, k)
		}
	}
	if got := Lookup("1"); got != nil {
		t.Errorf("Lookup(1) = %v, want nil", got)
	}
	if ErrMerge.Code != "100009" {
		t.Errorf("got %q, want %q", ErrMerge.Code, "100009")
	}
}

func TestErrorIs(t *testing.T) {
	err := error(Raise(ErrCast, "to int32").WithCause(io.EOF))
	if !errors.Is(err, ErrCast) {
		t.Errorf("not an ErrCast")
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("cause not reachable")
	}
	if errors.Is(err, ErrMerge) {
		t.Errorf("unexpected ErrMerge match")
	}
	want := "ERR_CAST: data cast failed: to int32: EOF"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWithContextCopies(t *testing.T) {
	base := Raise(ErrData, "")
	a := base.WithContext("path", "/a")
	b := a.WithContext("line", 3)
	if base.Context() != nil {
		t.Errorf("base context modified")
	}
	if diff := cmp.Diff(map[string]any{"path": "/a"}, a.Context()); diff != "" {
		t.Errorf("a context (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"path": "/a", "line": 3}, b.Context()); diff != "" {
		t.Errorf("b context (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Errorf(ErrArgument, "missing %q", "k").
		WithCause(errors.New("boom")).
		WithContext("key", "k").
		WithContext("code", "shadowed")
	d, e := json.Marshal(err)
	if e != nil {
		t.Fatal(e)
	}
	var got map[string]any
	if e := json.Unmarshal(d, &got); e != nil {
		t.Fatal(e)
	}
	want := map[string]any{
		"name":       "ERR_ARGUMENT",
		"code":       "100011",
		"msg":        "invalid argument",
		"msg_detail": `missing "k"`,
		"cause":      "boom",
		"key":        "k",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
