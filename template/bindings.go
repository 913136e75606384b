package template

import (
	"strconv"
	"strings"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/value"
)

// Bindings records the values bound by the place helper during one
// render, in binding order.
type Bindings struct {
	keys   []string
	values map[string]*value.Value
}

func newBindings() *Bindings {
	return &Bindings{values: map[string]*value.Value{}}
}

// bind stores v under name, or under the positional key $n when name is
// empty, where n-1 is the number of distinct keys bound so far. Names
// starting with $ are reserved for positional keys.
func (b *Bindings) bind(name string, v *value.Value) (string, error) {
	key := name
	switch {
	case key == "":
		key = "$" + strconv.Itoa(len(b.keys)+1)
	case strings.HasPrefix(key, "$"):
		return "", apperr.Errorf(apperr.ErrArgument, "place name %q is reserved", name)
	}
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v
	return key, nil
}

func (b *Bindings) Len() int {
	return len(b.keys)
}

func (b *Bindings) Keys() []string {
	res := make([]string, len(b.keys))
	copy(res, b.keys)
	return res
}

func (b *Bindings) Get(key string) (*value.Value, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Values returns the bound values in binding order.
func (b *Bindings) Values() []*value.Value {
	res := make([]*value.Value, len(b.keys))
	for i, k := range b.keys {
		res[i] = b.values[k]
	}
	return res
}

// Value returns the bindings as an Object keyed by placeholder.
func (b *Bindings) Value() *value.Value {
	return value.FromMap(b.values)
}
