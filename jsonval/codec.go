package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/tree"
	"github.com/signadot/valuefmt/value"
)

// Decode parses a single JSON document, keeping numbers as json.Number.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n any
	if err := dec.Decode(&n); err != nil {
		return nil, apperr.Raise(apperr.ErrDeserialize, formatName).WithCause(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, apperr.Raise(apperr.ErrDeserialize, "json: trailing data after document")
	}
	return n, nil
}

func Encode(n any) ([]byte, error) {
	d, err := json.Marshal(n)
	if err != nil {
		return nil, apperr.Raise(apperr.ErrSerialize, formatName).WithCause(err)
	}
	return d, nil
}

// EncodeIndent is Encode with two space indentation.
func EncodeIndent(n any) ([]byte, error) {
	d, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, apperr.Raise(apperr.ErrSerialize, formatName).WithCause(err)
	}
	return d, nil
}

func Unmarshal(data []byte) (*value.Value, error) {
	n, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return ToValue(n)
}

func Marshal(v *value.Value) ([]byte, error) {
	n, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	return Encode(n)
}

// Merge deep merges in into *base, storing the result in *base, and
// returns a copy of the result.
func Merge(base *any, in any) (any, error) {
	res, err := tree.Merge[any](tree.Native{}, *base, in)
	if err != nil {
		return nil, err
	}
	*base = res
	return tree.Native{}.Clone(res), nil
}

func Get(root any, pointer string) (any, bool) {
	return tree.Get[any](tree.Native{}, root, pointer)
}
