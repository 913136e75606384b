package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/valuefmt"
	"github.com/signadot/valuefmt/format"
	"github.com/signadot/valuefmt/value"

	"github.com/scott-cotton/cli"
)

type doc struct {
	file   string
	format format.Format
	value  *value.Value
}

func readDoc(cfg *MainConfig, cc *cli.Context, file string) (*doc, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	res := &doc{file: file, format: cfg.inFormat(file)}
	res.value, err = valuefmt.Load(res.format, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return res, nil
}

// readDocs reads files, or stdin when there are none.
func readDocs(cfg *MainConfig, cc *cli.Context, files []string) ([]*doc, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]*doc, 0, len(files))
	for _, file := range files {
		d, err := readDoc(cfg, cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

// writeValues writes vs in the output format for input format in,
// separating yaml documents with "---".
func writeValues(cfg *MainConfig, w io.Writer, in format.Format, vs ...*value.Value) error {
	out := cfg.outFormat(in)
	for i, v := range vs {
		d, err := valuefmt.Dump(out, v)
		if err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if i > 0 && out.IsYAML() {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if !out.IsBinary() && !bytes.HasSuffix(d, []byte("\n")) {
			d = append(d, '\n')
		}
		if _, err := w.Write(d); err != nil {
			return fmt.Errorf("error writing result %d: %w", i, err)
		}
	}
	return nil
}
