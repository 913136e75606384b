package yamlval

import (
	"bytes"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/value"

	"gopkg.in/yaml.v3"
)

// Decode parses the first YAML document in data. An empty input yields
// a null node. Aliases are kept but checked as in ToValue.
func Decode(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperr.Raise(apperr.ErrDeserialize, formatName).WithCause(err)
	}
	if _, err := checkAliases(&doc); err != nil {
		return nil, apperr.Raise(apperr.ErrDeserialize, formatName).WithCause(err)
	}
	if doc.Kind == 0 {
		return nullNode(), nil
	}
	return &doc, nil
}

func Encode(n *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return nil, apperr.Raise(apperr.ErrSerialize, formatName).WithCause(err)
	}
	if err := enc.Close(); err != nil {
		return nil, apperr.Raise(apperr.ErrSerialize, formatName).WithCause(err)
	}
	return buf.Bytes(), nil
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
