// Package bsonval navigates decoded BSON documents with RFC 6901
// pointers.
//
// A BSON tree is built from bson.D, bson.M, bson.A and []any containers
// holding any of the scalar types the mongo driver decodes to. Only
// pointer lookup is provided; BSON is not one of the document formats
// Values convert to.
package bsonval

import (
	"fmt"
	"slices"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/tree"

	"go.mongodb.org/mongo-driver/bson"
)

const formatName = "bson"

// Tree is the tree.View for BSON trees.
type Tree struct{}

var _ tree.View[any] = Tree{}

func (Tree) Kind(n any) tree.Kind {
	switch n.(type) {
	case bson.D, bson.M, map[string]any:
		return tree.Object
	case bson.A, []any:
		return tree.Array
	}
	return tree.Scalar
}

func (Tree) Len(n any) int {
	switch x := n.(type) {
	case bson.D:
		return len(x)
	case bson.M:
		return len(x)
	case map[string]any:
		return len(x)
	case bson.A:
		return len(x)
	case []any:
		return len(x)
	}
	return 0
}

func (Tree) Index(n any, i int) any {
	switch x := n.(type) {
	case bson.A:
		return x[i]
	case []any:
		return x[i]
	}
	return nil
}

// Keys returns the keys of a document in order, or sorted for maps.
func (Tree) Keys(n any) []string {
	switch x := n.(type) {
	case bson.D:
		res := make([]string, len(x))
		for i, e := range x {
			res[i] = e.Key
		}
		return res
	case bson.M:
		return sortedKeys(x)
	case map[string]any:
		return sortedKeys(x)
	}
	return nil
}

func sortedKeys[M ~map[string]any](m M) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Field returns the first element of a document with the given key.
func (Tree) Field(n any, key string) (any, bool) {
	switch x := n.(type) {
	case bson.D:
		for _, e := range x {
			if e.Key == key {
				return e.Value, true
			}
		}
	case bson.M:
		v, ok := x[key]
		return v, ok
	case map[string]any:
		v, ok := x[key]
		return v, ok
	}
	return nil, false
}

func (t Tree) Describe(n any) string {
	switch t.Kind(n) {
	case tree.Object:
		return "Document"
	case tree.Array:
		return "Array"
	}
	if n == nil {
		return "Null"
	}
	return fmt.Sprintf("%T", n)
}

// Decode parses one BSON document. Nested documents decode as bson.D
// and arrays as bson.A.
func Decode(data []byte) (bson.D, error) {
	var d bson.D
	if err := bson.Unmarshal(data, &d); err != nil {
		return nil, apperr.Raise(apperr.ErrDeserialize, formatName).WithCause(err)
	}
	return d, nil
}

// Get returns the node at pointer below root.
func Get(root any, pointer string) (any, bool) {
	return tree.Get[any](Tree{}, root, pointer)
}
