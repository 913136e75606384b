// Package valuefmt loads, merges, queries and writes documents in any of
// the formats named by package format, through the common
// [value.Value] model.
//
//	v, err := valuefmt.LoadFile("config.yaml")
//	...
//	out, err := valuefmt.Dump(format.TOMLFormat, v)
package valuefmt

import (
	"fmt"
	"os"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/binval"
	"github.com/signadot/valuefmt/format"
	"github.com/signadot/valuefmt/jsonval"
	"github.com/signadot/valuefmt/tomlval"
	"github.com/signadot/valuefmt/value"
	"github.com/signadot/valuefmt/yamlval"
)

func badFormat(f format.Format) error {
	return apperr.Raise(apperr.ErrFormat, fmt.Sprintf("format %d", int(f))).WithCause(format.ErrBadFormat)
}

// Load decodes data in format f.
func Load(f format.Format, data []byte) (*value.Value, error) {
	switch f {
	case format.JSONFormat:
		return jsonval.Unmarshal(data)
	case format.YAMLFormat:
		return yamlval.Unmarshal(data)
	case format.TOMLFormat:
		return tomlval.Unmarshal(data)
	case format.BinaryFormat:
		return binval.Unmarshal(data)
	}
	return nil, badFormat(f)
}

// LoadFile reads path in the format given by its extension.
func LoadFile(path string) (*value.Value, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, apperr.Raise(apperr.ErrFormat, path).WithCause(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Raise(apperr.ErrIO, path).WithCause(err)
	}
	return Load(f, d)
}

// Dump encodes v in format f. JSON output is indented.
func Dump(f format.Format, v *value.Value) ([]byte, error) {
	switch f {
	case format.JSONFormat:
		n, err := jsonval.FromValue(v)
		if err != nil {
			return nil, err
		}
		return jsonval.EncodeIndent(n)
	case format.YAMLFormat:
		return yamlval.Marshal(v)
	case format.TOMLFormat:
		return tomlval.Marshal(v)
	case format.BinaryFormat:
		return binval.Marshal(v)
	}
	return nil, badFormat(f)
}

func Convert(from, to format.Format, data []byte) ([]byte, error) {
	v, err := Load(from, data)
	if err != nil {
		return nil, err
	}
	return Dump(to, v)
}

// MergeAll deep merges vs from left to right into a new value. No
// arguments give Null.
func MergeAll(vs ...*value.Value) (*value.Value, error) {
	res := value.Null()
	for i, v := range vs {
		if i == 0 {
			res = v.Clone()
			continue
		}
		if _, err := res.Merge(v); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Get returns the value at an RFC 6901 pointer into v.
func Get(v *value.Value, pointer string) (*value.Value, bool) {
	return v.Pointer(pointer)
}

// Patch applies an RFC 6902 patch, or an RFC 7386 merge patch when
// merge is set, to v. The patch works on the JSON form of v.
func Patch(v *value.Value, patch []byte, merge bool) (*value.Value, error) {
	if merge {
		return jsonval.MergePatch(v, patch)
	}
	return jsonval.Patch(v, patch)
}
