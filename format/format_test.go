package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("got %v, want %v", got, f)
		}
		byExt, err := FromPath("dir/file" + f.Suffix())
		if err != nil || byExt != f {
			t.Errorf("FromPath(%q) = %v, %v, want %v", f.Suffix(), byExt, err, f)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want %v", err, ErrBadFormat)
	}
	if _, err := FromPath("Makefile"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want %v", err, ErrBadFormat)
	}
	if got, _ := FromPath("A.YML"); got != YAMLFormat {
		t.Errorf("got %v, want %v", got, YAMLFormat)
	}
	var f Format
	if err := f.UnmarshalText([]byte("t")); err != nil || f != TOMLFormat {
		t.Errorf("got %v, %v, want toml", f, err)
	}
}
