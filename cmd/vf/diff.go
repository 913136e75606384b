package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/valuefmt/encode"
	"github.com/signadot/valuefmt/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	docs, err := readDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	from, to := docs[0].value, docs[1].value
	colored := cfg.colors(cc.Out)
	var changed bool
	if cfg.Lines {
		changed, err = diffLines(cc.Out, encode.MustString(from), encode.MustString(to), colored)
	} else {
		changed, err = diffValues(cc.Out, libdiff.Diff(from, to), colored)
	}
	if err != nil {
		return err
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffValues(w io.Writer, changes []libdiff.Change, colored bool) (bool, error) {
	for _, c := range changes {
		ln := c.String()
		if colored {
			ln = colorChange(c.Op)("%s", ln)
		}
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return false, err
		}
	}
	return len(changes) != 0, nil
}

func colorChange(op libdiff.Op) func(string, ...any) string {
	switch op {
	case libdiff.Insert:
		return color.GreenString
	case libdiff.Delete:
		return color.RedString
	}
	return color.YellowString
}

func diffLines(w io.Writer, from, to string, colored bool) (bool, error) {
	d := libdiff.Lines(from+"\n", to+"\n")
	if colored {
		lines := strings.SplitAfter(d, "\n")
		for i, ln := range lines {
			switch {
			case strings.HasPrefix(ln, "-"):
				lines[i] = color.RedString("%s", ln)
			case strings.HasPrefix(ln, "+"):
				lines[i] = color.GreenString("%s", ln)
			}
		}
		d = strings.Join(lines, "")
	}
	if _, err := io.WriteString(w, d); err != nil {
		return false, err
	}
	return libdiff.Changed(d), nil
}
