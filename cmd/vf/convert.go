package main

import (
	"github.com/signadot/valuefmt/value"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	vs := make([]*value.Value, len(docs))
	for i, d := range docs {
		vs[i] = d.value
	}
	return writeValues(cfg.MainConfig, cc.Out, docs[0].format, vs...)
}
