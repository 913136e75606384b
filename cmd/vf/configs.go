package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/valuefmt/encode"
	"github.com/signadot/valuefmt/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	B     bool `cli:"name=b desc='view with brackets'"`
	Types bool `cli:"name=types desc='view with exact number types'"`
	Color bool `cli:"name=color desc='view with color'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Defaults *Defaults

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format of file: -I, then the defaults file, then the
// file extension, then yaml.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if cfg.Defaults != nil && cfg.Defaults.in != nil {
		return *cfg.Defaults.in
	}
	if file != "" && file != "-" {
		if f, err := format.FromPath(file); err == nil {
			return f
		}
	}
	return format.YAMLFormat
}

// outFormat is -O, then the defaults file, then the input format.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Defaults != nil && cfg.Defaults.out != nil {
		return *cfg.Defaults.out
	}
	return in
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	if cfg.Defaults != nil && cfg.Defaults.Color != nil {
		return *cfg.Defaults.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeBrackets(cfg.B),
		encode.EncodeTypes(cfg.Types),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m desc='apply as a json merge patch'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Lines bool `cli:"name=lines desc='diff the viewed text line by line'"`

	Diff *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type RenderConfig struct {
	*MainConfig
	Data     string `cli:"name=d desc='data document'"`
	Bindings bool   `cli:"name=bindings desc='print placeholder bindings after the text'"`

	Render *cli.Command
}
