package yamlval

import (
	"github.com/signadot/valuefmt/tree"

	"gopkg.in/yaml.v3"
)

// resolve skips document wrappers and follows aliases.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Tree is the tree.Editor for YAML nodes.
type Tree struct{}

var _ tree.Editor[*yaml.Node] = Tree{}

func (Tree) Kind(n *yaml.Node) tree.Kind {
	switch r := resolve(n); {
	case r == nil:
		return tree.Scalar
	case r.Kind == yaml.SequenceNode:
		return tree.Array
	case r.Kind == yaml.MappingNode:
		return tree.Object
	}
	return tree.Scalar
}

func (t Tree) Len(n *yaml.Node) int {
	r := resolve(n)
	switch t.Kind(r) {
	case tree.Array:
		return len(r.Content)
	case tree.Object:
		return len(r.Content) / 2
	}
	return 0
}

func (Tree) Index(n *yaml.Node, i int) *yaml.Node {
	return resolve(n).Content[i]
}

func (Tree) Keys(n *yaml.Node) []string {
	r := resolve(n)
	res := make([]string, 0, len(r.Content)/2)
	for i := 0; i+1 < len(r.Content); i += 2 {
		if k := resolve(r.Content[i]); k != nil && k.Kind == yaml.ScalarNode {
			res = append(res, k.Value)
		}
	}
	return res
}

func (Tree) Field(n *yaml.Node, key string) (*yaml.Node, bool) {
	i := fieldIndex(resolve(n), key)
	if i < 0 {
		return nil, false
	}
	return resolve(n).Content[i+1], true
}

func fieldIndex(m *yaml.Node, key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		k := resolve(m.Content[i])
		if k != nil && k.Kind == yaml.ScalarNode && k.Value == key {
			return i
		}
	}
	return -1
}

func (t Tree) Describe(n *yaml.Node) string {
	switch t.Kind(n) {
	case tree.Array:
		return "Array"
	case tree.Object:
		return "Object"
	}
	r := resolve(n)
	if r == nil {
		return "!!null"
	}
	return r.ShortTag()
}

// Clone deep copies n, expanding aliases and dropping anchors. n must
// be free of alias cycles; Decode and Merge guarantee that.
func (t Tree) Clone(n *yaml.Node) *yaml.Node {
	r := resolve(n)
	if r == nil {
		return nullNode()
	}
	res := *r
	res.Anchor = ""
	if r.Content != nil {
		res.Content = make([]*yaml.Node, len(r.Content))
		for i, c := range r.Content {
			res.Content[i] = t.Clone(c)
		}
	}
	return &res
}

// own returns n, or a copy of it when n is an alias, so that edits do
// not reach the other aliases of the same anchor.
func (t Tree) own(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode {
		return t.Clone(n)
	}
	return n
}

func (t Tree) Append(arr *yaml.Node, elems ...*yaml.Node) *yaml.Node {
	arr = t.own(arr)
	r := resolve(arr)
	r.Content = append(r.Content, elems...)
	return arr
}

func (t Tree) SetField(obj *yaml.Node, key string, v *yaml.Node) *yaml.Node {
	obj = t.own(obj)
	r := resolve(obj)
	if i := fieldIndex(r, key); i >= 0 {
		r.Content[i+1] = v
		return obj
	}
	r.Content = append(r.Content, strNode(key), v)
	return obj
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// Merge deep merges in into *base, storing the result in *base, and
// returns a copy of the result. Aliases in *base are expanded before
// merging. Both trees are checked as in ToValue.
func Merge(base **yaml.Node, in *yaml.Node) (*yaml.Node, error) {
	aliased, err := checkAliases(*base)
	if err != nil {
		return nil, err
	}
	if _, err := checkAliases(in); err != nil {
		return nil, err
	}
	if aliased {
		*base = Tree{}.Clone(*base)
	}
	res, err := tree.Merge[*yaml.Node](Tree{}, *base, in)
	if err != nil {
		return nil, err
	}
	*base = res
	return Tree{}.Clone(res), nil
}

func Get(root *yaml.Node, pointer string) (*yaml.Node, bool) {
	n, ok := tree.Get[*yaml.Node](Tree{}, root, pointer)
	if !ok {
		return nil, false
	}
	return resolve(n), true
}
