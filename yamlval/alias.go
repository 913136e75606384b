package yamlval

import (
	"errors"
	"strconv"

	"github.com/signadot/valuefmt/value"

	"gopkg.in/yaml.v3"
)

// MaxExpansion bounds the number of nodes a document may reach once
// every alias is replaced by its anchored node.
const MaxExpansion = 1 << 20

var (
	ErrAliasCycle      = errors.New("alias refers to an enclosing node")
	ErrExcessiveAlias  = errors.New("excessive aliasing")
	errAliasUnresolved = errors.New("alias without anchored node")
)

// checkAliases walks n once per distinct node and fails if an alias
// refers to one of its own ancestors or if the expanded tree would
// exceed MaxExpansion nodes. It reports whether n contains aliases.
func checkAliases(n *yaml.Node) (bool, error) {
	c := &aliasCheck{
		w:      &value.Walk{Format: formatName},
		sizes:  map[*yaml.Node]int{},
		active: map[*yaml.Node]bool{},
	}
	if _, err := c.size(n); err != nil {
		return false, err
	}
	return c.aliased, nil
}

type aliasCheck struct {
	w       *value.Walk
	sizes   map[*yaml.Node]int
	active  map[*yaml.Node]bool
	aliased bool
}

func (c *aliasCheck) size(n *yaml.Node) (int, error) {
	if n == nil {
		return 0, nil
	}
	if s, ok := c.sizes[n]; ok {
		return s, nil
	}
	if c.active[n] {
		return 0, c.w.Fail(ErrAliasCycle)
	}
	c.active[n] = true
	defer delete(c.active, n)

	s := 1
	if n.Kind == yaml.AliasNode {
		c.aliased = true
		if n.Alias == nil {
			return 0, c.w.Fail(errAliasUnresolved)
		}
		a, err := c.size(n.Alias)
		if err != nil {
			return 0, err
		}
		s = a
	}
	for i, ch := range n.Content {
		tok, child := c.token(n, i)
		if child {
			if err := c.w.Enter(tok); err != nil {
				return 0, err
			}
		}
		cs, err := c.size(ch)
		if child {
			c.w.Leave()
		}
		if err != nil {
			return 0, err
		}
		s += cs
		if s > MaxExpansion {
			return 0, c.w.Fail(ErrExcessiveAlias)
		}
	}
	c.sizes[n] = s
	return s, nil
}

// token names the i'th content node of n in error pointers. Mapping
// keys and document wrappers add no token.
func (c *aliasCheck) token(n *yaml.Node, i int) (string, bool) {
	switch n.Kind {
	case yaml.SequenceNode:
		return strconv.Itoa(i), true
	case yaml.MappingNode:
		if i%2 == 0 {
			return "", false
		}
		if k := resolve(n.Content[i-1]); k != nil {
			return k.Value, true
		}
		return "", true
	}
	return "", false
}
