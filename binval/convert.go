package binval

import (
	"strconv"

	"github.com/signadot/valuefmt/debug"
	"github.com/signadot/valuefmt/tree"
	"github.com/signadot/valuefmt/value"
)

const formatName = "binary"

func ToValue(n *Node) (*value.Value, error) {
	w := &value.Walk{Format: formatName}
	v, err := toValue(w, n)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("binary to value: %s\n", v)
	}
	return v, nil
}

func toValue(w *value.Walk, n *Node) (*value.Value, error) {
	switch n.kind() {
	case NilKind:
		return value.Null(), nil
	case BoolKind:
		return value.FromBool(n.Bool), nil
	case Int32Kind:
		return value.FromI32(int32(n.Int)), nil
	case Int64Kind:
		return value.FromI64(n.Int), nil
	case Uint32Kind:
		return value.FromU32(uint32(n.Uint)), nil
	case Uint64Kind:
		return value.FromU64(n.Uint), nil
	case Float32Kind:
		return value.FromF32(float32(n.Float)), nil
	case Float64Kind:
		return value.FromF64(n.Float), nil
	case StringKind:
		return value.FromString(n.Str), nil
	case BinaryKind:
		return value.FromBinary(n.Bytes), nil
	case ArrayKind:
		res := value.Array()
		res.Values = make([]*value.Value, len(n.Elems))
		for i, e := range n.Elems {
			if err := w.Enter(strconv.Itoa(i)); err != nil {
				return nil, err
			}
			c, err := toValue(w, e)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Values[i] = c
		}
		return res, nil
	case MapKind:
		res := value.Object()
		for _, e := range n.Entries {
			if e.Key.kind() != StringKind {
				return nil, w.Unsupported("map key of kind %s", e.Key.kind())
			}
			if err := w.Enter(e.Key.Str); err != nil {
				return nil, err
			}
			c, err := toValue(w, e.Value)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Set(e.Key.Str, c)
		}
		return res, nil
	case ExtKind:
		return nil, w.Unsupported("extension type %d", n.ExtType)
	}
	return nil, w.Unsupported("node kind %s", n.Kind)
}

func FromValue(v *value.Value) (*Node, error) {
	w := &value.Walk{Format: formatName}
	return fromValue(w, v)
}

func fromValue(w *value.Walk, v *value.Value) (*Node, error) {
	if v == nil {
		return Nil(), nil
	}
	switch v.Type {
	case value.NullType:
		return Nil(), nil
	case value.BoolType:
		return FromBool(v.Bool), nil
	case value.I32Type:
		return FromInt32(int32(v.Int)), nil
	case value.I64Type:
		return FromInt64(v.Int), nil
	case value.U32Type:
		return FromUint32(uint32(v.Uint)), nil
	case value.U64Type:
		return FromUint64(v.Uint), nil
	case value.F32Type:
		return FromFloat32(float32(v.Float)), nil
	case value.F64Type:
		return FromFloat64(v.Float), nil
	case value.StringType:
		return FromString(v.Str), nil
	case value.BinaryType:
		return FromBinary(v.Binary), nil
	case value.ArrayType:
		res := FromArray(make([]*Node, len(v.Values))...)
		for i, e := range v.Values {
			if err := w.Enter(strconv.Itoa(i)); err != nil {
				return nil, err
			}
			c, err := fromValue(w, e)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Elems[i] = c
		}
		return res, nil
	case value.ObjectType:
		res := FromEntries(make([]Entry, len(v.Values))...)
		for i, k := range v.Fields {
			if err := w.Enter(k); err != nil {
				return nil, err
			}
			c, err := fromValue(w, v.Values[i])
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Entries[i] = Entry{Key: FromString(k), Value: c}
		}
		return res, nil
	}
	if s, ok := v.CalendarString(); ok {
		return FromString(s), nil
	}
	return nil, w.Unsupported("value type %s", v.Type)
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

// Tree is the tree.Editor for Nodes. Only String keyed map entries are
// visible to it.
type Tree struct{}

var _ tree.Editor[*Node] = Tree{}

func (Tree) Kind(n *Node) tree.Kind {
	switch n.kind() {
	case ArrayKind:
		return tree.Array
	case MapKind:
		return tree.Object
	}
	return tree.Scalar
}

func (Tree) Len(n *Node) int {
	switch n.kind() {
	case ArrayKind:
		return len(n.Elems)
	case MapKind:
		return len(n.Entries)
	}
	return 0
}

func (Tree) Index(n *Node, i int) *Node {
	return n.Elems[i]
}

func (Tree) Keys(n *Node) []string {
	res := make([]string, 0, len(n.Entries))
	for _, e := range n.Entries {
		if e.Key.kind() == StringKind {
			res = append(res, e.Key.Str)
		}
	}
	return res
}

func (Tree) Field(n *Node, key string) (*Node, bool) {
	return n.Lookup(key)
}

func (Tree) Describe(n *Node) string {
	return n.kind().String()
}

func (Tree) Clone(n *Node) *Node {
	return n.Clone()
}

func (Tree) Append(arr *Node, elems ...*Node) *Node {
	arr.Elems = append(arr.Elems, elems...)
	return arr
}

func (Tree) SetField(obj *Node, key string, v *Node) *Node {
	if i := obj.entryIndex(key); i >= 0 {
		obj.Entries[i].Value = v
		return obj
	}
	obj.Entries = append(obj.Entries, Entry{Key: FromString(key), Value: v})
	return obj
}

// Merge deep merges in into *base, storing the result in *base, and
// returns a copy of the result.
func Merge(base **Node, in *Node) (*Node, error) {
	res, err := tree.Merge[*Node](Tree{}, *base, in)
	if err != nil {
		return nil, err
	}
	*base = res
	return res.Clone(), nil
}

func Get(root *Node, pointer string) (*Node, bool) {
	return tree.Get[*Node](Tree{}, root, pointer)
}
