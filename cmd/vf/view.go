package main

import (
	"fmt"

	"github.com/signadot/valuefmt/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for i, d := range docs {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(d.value, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", d.file, err)
		}
	}
	return nil
}
