package tree

import (
	"fmt"
	"maps"
	"slices"
)

// Native is the Editor for plain Go trees built from []any and
// map[string]any, as produced by encoding/json or go-toml. Every other
// node is a Scalar. Object keys are visited in sorted order.
type Native struct{}

var _ Editor[any] = Native{}

func (Native) Kind(n any) Kind {
	switch n.(type) {
	case []any:
		return Array
	case map[string]any:
		return Object
	}
	return Scalar
}

func (Native) Len(n any) int {
	switch x := n.(type) {
	case []any:
		return len(x)
	case map[string]any:
		return len(x)
	}
	return 0
}

func (Native) Index(n any, i int) any {
	return n.([]any)[i]
}

func (Native) Keys(n any) []string {
	return slices.Sorted(maps.Keys(n.(map[string]any)))
}

func (Native) Field(n any, key string) (any, bool) {
	v, ok := n.(map[string]any)[key]
	return v, ok
}

func (Native) Describe(n any) string {
	switch n.(type) {
	case nil:
		return "Null"
	case bool:
		return "Bool"
	case string:
		return "String"
	case []any:
		return "Array"
	case map[string]any:
		return "Object"
	}
	return fmt.Sprintf("%T", n)
}

func (c Native) Clone(n any) any {
	switch x := n.(type) {
	case []any:
		res := make([]any, len(x))
		for i, v := range x {
			res[i] = c.Clone(v)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			res[k] = c.Clone(v)
		}
		return res
	case []byte:
		return slices.Clone(x)
	}
	return n
}

func (Native) Append(arr any, elems ...any) any {
	return append(arr.([]any), elems...)
}

func (Native) SetField(obj any, key string, v any) any {
	m := obj.(map[string]any)
	m[key] = v
	return m
}
