package main

import (
	"fmt"

	"github.com/signadot/valuefmt"
	"github.com/signadot/valuefmt/value"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	docs, err := readDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	vs := make([]*value.Value, len(docs))
	for i, d := range docs {
		vs[i] = d.value
	}
	res, err := valuefmt.MergeAll(vs...)
	if err != nil {
		return fmt.Errorf("error merging: %w", err)
	}
	return writeValues(cfg.MainConfig, cc.Out, docs[0].format, res)
}
