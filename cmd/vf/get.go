package main

import (
	"fmt"

	"github.com/signadot/valuefmt"
	"github.com/signadot/valuefmt/tree"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a pointer", cli.ErrUsage)
	}
	ptr := args[0]
	if _, ok := tree.Tokens(ptr); !ok {
		return fmt.Errorf("%w: invalid pointer %q", cli.ErrUsage, ptr)
	}
	docs, err := readDocs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	for _, d := range docs {
		v, ok := valuefmt.Get(d.value, ptr)
		if !ok {
			return fmt.Errorf("no value at %q in %s", ptr, d.file)
		}
		if err := writeValues(cfg.MainConfig, cc.Out, d.format, v); err != nil {
			return err
		}
	}
	return nil
}
