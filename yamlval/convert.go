package yamlval

import (
	"math"
	"strconv"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/debug"
	"github.com/signadot/valuefmt/value"

	"gopkg.in/yaml.v3"
)

const formatName = "yaml"

// ToValue converts n, expanding aliases. Documents with alias cycles or
// an expansion above MaxExpansion nodes are rejected.
func ToValue(n *yaml.Node) (*value.Value, error) {
	if _, err := checkAliases(n); err != nil {
		return nil, err
	}
	w := &value.Walk{Format: formatName}
	v, err := toValue(w, n)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("yaml to value: %s\n", v)
	}
	return v, nil
}

func toValue(w *value.Walk, n *yaml.Node) (*value.Value, error) {
	r := resolve(n)
	if r == nil {
		return value.Null(), nil
	}
	switch r.Kind {
	case yaml.ScalarNode:
		return scalarToValue(w, r)
	case yaml.SequenceNode:
		res := value.Array()
		res.Values = make([]*value.Value, len(r.Content))
		for i, c := range r.Content {
			if err := w.Enter(strconv.Itoa(i)); err != nil {
				return nil, err
			}
			v, err := toValue(w, c)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Values[i] = v
		}
		return res, nil
	case yaml.MappingNode:
		return mappingToValue(w, r)
	}
	return nil, w.Unsupported("yaml node kind %d", r.Kind)
}

func scalarToValue(w *value.Walk, n *yaml.Node) (*value.Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return value.Null(), nil
	case "!!str", "!!timestamp":
		return value.FromString(n.Value), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, w.Fail(apperr.Raise(apperr.ErrParse, "yaml bool").WithCause(err))
		}
		return value.FromBool(b), nil
	case "!!int":
		var x any
		if err := n.Decode(&x); err != nil {
			return nil, w.Fail(apperr.Raise(apperr.ErrParse, "yaml int").WithCause(err))
		}
		switch i := x.(type) {
		case int:
			return value.FromI64(int64(i)), nil
		case int64:
			return value.FromI64(i), nil
		case uint64:
			if i <= math.MaxInt64 {
				return value.FromI64(int64(i)), nil
			}
			return value.FromU64(i), nil
		case float64:
			return value.FromF64(i), nil
		}
		return nil, w.Fail(apperr.Errorf(apperr.ErrInternal, "yaml int %q decoded as %T", n.Value, x))
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, w.Fail(apperr.Raise(apperr.ErrParse, "yaml float").WithCause(err))
		}
		return value.FromF64(f), nil
	default:
		return nil, w.Unsupported("yaml tag %s", tag)
	}
}

func mappingToValue(w *value.Walk, n *yaml.Node) (*value.Value, error) {
	res := value.Object()
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := resolve(n.Content[i])
		if k == nil || k.Kind != yaml.ScalarNode {
			return nil, w.Unsupported("non-scalar mapping key")
		}
		if k.ShortTag() == "!!merge" {
			merges = append(merges, n.Content[i+1])
			continue
		}
		if err := w.Enter(k.Value); err != nil {
			return nil, err
		}
		v, err := toValue(w, n.Content[i+1])
		w.Leave()
		if err != nil {
			return nil, err
		}
		res.Set(k.Value, v)
	}
	for _, m := range merges {
		if err := applyMergeKey(w, res, m); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// applyMergeKey adds the entries of the mapping (or sequence of
// mappings) m that obj does not define yet. Earlier mappings in a
// sequence take precedence.
func applyMergeKey(w *value.Walk, obj *value.Value, m *yaml.Node) error {
	r := resolve(m)
	var srcs []*yaml.Node
	switch {
	case r != nil && r.Kind == yaml.MappingNode:
		srcs = []*yaml.Node{r}
	case r != nil && r.Kind == yaml.SequenceNode:
		srcs = r.Content
	default:
		return w.Unsupported("merge key value")
	}
	for _, s := range srcs {
		if s = resolve(s); s == nil || s.Kind != yaml.MappingNode {
			return w.Unsupported("merge key value")
		}
		if err := w.Enter("<<"); err != nil {
			return err
		}
		src, err := mappingToValue(w, s)
		w.Leave()
		if err != nil {
			return err
		}
		for i, k := range src.Fields {
			if _, ok := obj.Get(k); !ok {
				obj.Set(k, src.Values[i])
			}
		}
	}
	return nil
}

func FromValue(v *value.Value) (*yaml.Node, error) {
	w := &value.Walk{Format: formatName}
	return fromValue(w, v)
}

func fromValue(w *value.Walk, v *value.Value) (*yaml.Node, error) {
	if v == nil {
		return nullNode(), nil
	}
	scalar := func(tag, s string) (*yaml.Node, error) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}, nil
	}
	switch v.Type {
	case value.NullType:
		return nullNode(), nil
	case value.BoolType:
		return scalar("!!bool", strconv.FormatBool(v.Bool))
	case value.I32Type, value.I64Type:
		return scalar("!!int", strconv.FormatInt(v.Int, 10))
	case value.U32Type, value.U64Type:
		return scalar("!!int", strconv.FormatUint(v.Uint, 10))
	case value.F32Type, value.F64Type:
		return scalar("!!float", formatFloat(v))
	case value.StringType:
		return strNode(v.Str), nil
	case value.BinaryType:
		return nil, w.Unsupported("binary")
	case value.ArrayType:
		res := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, len(v.Values))}
		for i, e := range v.Values {
			if err := w.Enter(strconv.Itoa(i)); err != nil {
				return nil, err
			}
			c, err := fromValue(w, e)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Content[i] = c
		}
		return res, nil
	case value.ObjectType:
		res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: make([]*yaml.Node, 0, 2*len(v.Values))}
		for i, k := range v.Fields {
			if err := w.Enter(k); err != nil {
				return nil, err
			}
			c, err := fromValue(w, v.Values[i])
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Content = append(res.Content, strNode(k), c)
		}
		return res, nil
	}
	if s, ok := v.CalendarString(); ok {
		return strNode(s), nil
	}
	return nil, w.Unsupported("value type %s", v.Type)
}

func formatFloat(v *value.Value) string {
	f := v.Float
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	bits := 64
	if v.Type == value.F32Type {
		bits = 32
	}
	return value.FormatFloat(f, bits)
}
