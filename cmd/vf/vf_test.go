package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/format"
	"github.com/signadot/valuefmt/libdiff"
	"github.com/signadot/valuefmt/value"
)

func TestParseDefaults(t *testing.T) {
	d, err := parseDefaults([]byte("in: json\nout: toml\ncolor: false\n"))
	if err != nil {
		t.Fatal(err)
	}
	if d.in == nil || *d.in != format.JSONFormat {
		t.Errorf("got in %v, want json", d.in)
	}
	if d.out == nil || *d.out != format.TOMLFormat {
		t.Errorf("got out %v, want toml", d.out)
	}
	if d.Color == nil || *d.Color {
		t.Errorf("got color %v, want false", d.Color)
	}
	if _, err := parseDefaults([]byte("in: xml\n")); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
	if _, err := parseDefaults([]byte("in: [")); !errors.Is(err, apperr.ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestLoadDefaultsEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "vf.yaml")
	if err := os.WriteFile(p, []byte("out: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VF_CONFIG", p)
	d, err := loadDefaults()
	if err != nil {
		t.Fatal(err)
	}
	if d.out == nil || *d.out != format.JSONFormat {
		t.Errorf("got out %v, want json", d.out)
	}
	t.Setenv("VF_CONFIG", filepath.Join(dir, "missing.yaml"))
	if _, err := loadDefaults(); !errors.Is(err, apperr.ErrEnvVar) {
		t.Errorf("got %v, want ErrEnvVar", err)
	}
}

func TestFormats(t *testing.T) {
	toml := format.TOMLFormat
	bin := format.BinaryFormat
	tests := []struct {
		name    string
		cfg     *MainConfig
		file    string
		wantIn  format.Format
		wantOut format.Format
	}{
		{"extension", &MainConfig{}, "a.json", format.JSONFormat, format.JSONFormat},
		{"stdin", &MainConfig{}, "-", format.YAMLFormat, format.YAMLFormat},
		{"unknown extension", &MainConfig{}, "a.txt", format.YAMLFormat, format.YAMLFormat},
		{"flags", &MainConfig{InFormat: &toml, OutFormat: &bin}, "a.json", format.TOMLFormat, format.BinaryFormat},
		{"defaults", &MainConfig{Defaults: &Defaults{in: &bin, out: &toml}}, "a.json", format.BinaryFormat, format.TOMLFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.cfg.inFormat(tt.file)
			if in != tt.wantIn {
				t.Errorf("got in %v, want %v", in, tt.wantIn)
			}
			if out := tt.cfg.outFormat(in); out != tt.wantOut {
				t.Errorf("got out %v, want %v", out, tt.wantOut)
			}
		})
	}
}

func TestWriteValues(t *testing.T) {
	cfg := &MainConfig{}
	buf := &bytes.Buffer{}
	err := writeValues(cfg, buf, format.YAMLFormat, value.FromI64(1), value.FromString("x"))
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n---\nx\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDiffOutput(t *testing.T) {
	from := value.FromMap(map[string]*value.Value{"a": value.FromI64(1)})
	to := value.FromMap(map[string]*value.Value{"a": value.FromI64(2)})
	buf := &bytes.Buffer{}
	changed, err := diffValues(buf, libdiff.Diff(from, to), false)
	if err != nil {
		t.Fatal(err)
	}
	if !changed || buf.String() != "~ /a: 1 -> 2\n" {
		t.Errorf("got %v %q", changed, buf.String())
	}
	buf.Reset()
	changed, err = diffLines(buf, "a: 1", "a: 1", false)
	if err != nil {
		t.Fatal(err)
	}
	if changed || buf.String() != " a: 1\n" {
		t.Errorf("got %v %q", changed, buf.String())
	}
}
