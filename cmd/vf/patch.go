package main

import (
	"fmt"

	"github.com/signadot/valuefmt"
	"github.com/signadot/valuefmt/jsonval"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	// the patch may be written in any format; the patch libraries read json
	p, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	pj, err := jsonval.Marshal(p.value)
	if err != nil {
		return fmt.Errorf("error encoding patch %s: %w", args[0], err)
	}
	docs, err := readDocs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	for _, d := range docs {
		res, err := valuefmt.Patch(d.value, pj, cfg.Merge)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", d.file, err)
		}
		if err := writeValues(cfg.MainConfig, cc.Out, d.format, res); err != nil {
			return err
		}
	}
	return nil
}
