package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/valuefmt/format"
	"github.com/signadot/valuefmt/template"
	"github.com/signadot/valuefmt/value"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: render requires a template file", cli.ErrUsage)
	}
	data := value.Null()
	dataFormat := format.YAMLFormat
	if cfg.Data != "" {
		d, err := readDoc(cfg.MainConfig, cc, cfg.Data)
		if err != nil {
			return err
		}
		data, dataFormat = d.value, d.format
	}
	reg := template.NewRegistry()
	defer reg.Close()
	for _, file := range args {
		text, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if err := reg.Register(filepath.Base(file), string(text)); err != nil {
			return err
		}
	}
	out, bindings, err := reg.Render(filepath.Base(args[0]), data)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	if !cfg.Bindings {
		return nil
	}
	if _, err := io.WriteString(cc.Out, "\n---\n"); err != nil {
		return err
	}
	return writeValues(cfg.MainConfig, cc.Out, dataFormat, bindings.Value())
}
