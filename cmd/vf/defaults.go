package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/format"

	"github.com/goccy/go-yaml"
)

const defaultsFile = ".vf.yaml"

// Defaults are settings read from $VF_CONFIG or ./.vf.yaml. Command
// line options take precedence.
type Defaults struct {
	In    string `yaml:"in"`
	Out   string `yaml:"out"`
	Color *bool  `yaml:"color"`

	in, out *format.Format
}

func loadDefaults() (*Defaults, error) {
	path := os.Getenv("VF_CONFIG")
	fromEnv := path != ""
	if !fromEnv {
		path = defaultsFile
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if !fromEnv && errors.Is(err, fs.ErrNotExist) {
			return &Defaults{}, nil
		}
		if fromEnv {
			return nil, apperr.Raise(apperr.ErrEnvVar, "VF_CONFIG="+path).WithCause(err)
		}
		return nil, apperr.Raise(apperr.ErrIO, path).WithCause(err)
	}
	res, err := parseDefaults(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

func parseDefaults(d []byte) (*Defaults, error) {
	res := &Defaults{}
	if err := yaml.Unmarshal(d, res); err != nil {
		return nil, apperr.Raise(apperr.ErrParse, "defaults").WithCause(err)
	}
	if res.In != "" {
		f, err := format.ParseFormat(res.In)
		if err != nil {
			return nil, apperr.Raise(apperr.ErrValidation, "defaults in").WithCause(err)
		}
		res.in = &f
	}
	if res.Out != "" {
		f, err := format.ParseFormat(res.Out)
		if err != nil {
			return nil, apperr.Raise(apperr.ErrValidation, "defaults out").WithCause(err)
		}
		res.out = &f
	}
	return res, nil
}
