package value

import (
	"github.com/signadot/valuefmt/debug"
	"github.com/signadot/valuefmt/tree"
)

// Tree is the tree.Editor for Values. Nil values read as Null.
type Tree struct{}

var _ tree.Editor[*Value] = Tree{}

func (Tree) Kind(v *Value) tree.Kind {
	switch v.typ() {
	case ArrayType:
		return tree.Array
	case ObjectType:
		return tree.Object
	}
	return tree.Scalar
}

func (Tree) Len(v *Value) int { return v.Len() }
func (Tree) Index(v *Value, i int) *Value { return v.Values[i] }
func (Tree) Keys(v *Value) []string { return v.Keys() }
func (Tree) Field(v *Value, k string) (*Value, bool) { return v.Get(k) }
func (Tree) Describe(v *Value) string { return v.typ().String() }
func (Tree) Clone(v *Value) *Value { return v.Clone() }

func (Tree) Append(arr *Value, elems ...*Value) *Value {
	arr.Append(elems...)
	return arr
}

func (Tree) SetField(obj *Value, key string, x *Value) *Value {
	obj.Set(key, x)
	return obj
}

// Merge deep merges in into v, modifying v, and returns a copy of the
// result. On error v may be partially merged.
func (v *Value) Merge(in *Value) (*Value, error) {
	res, err := tree.Merge[*Value](Tree{}, v, in)
	if err != nil {
		return nil, err
	}
	if res != v {
		*v = *res
	}
	if debug.Merge() {
		debug.Logf("merged %s\n", v)
	}
	return v.Clone(), nil
}

// Pointer returns the value at the RFC 6901 pointer p below v.
func (v *Value) Pointer(p string) (*Value, bool) {
	return tree.Get[*Value](Tree{}, v, p)
}
