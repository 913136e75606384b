package tree

import (
	"strconv"

	"github.com/signadot/valuefmt/debug"
)

// MaxDepth bounds the nesting Merge will descend into.
const MaxDepth = 4096

// Merge merges incoming into base and returns the result.
//
//   - An Array base absorbs the elements of an Array incoming, or
//     incoming itself otherwise.
//   - An Object base merges an Object incoming key by key; a key only in
//     incoming is copied over. Any other incoming is a *TypeConflictError.
//   - Any other base is replaced by a copy of incoming.
//
// base may be modified in place; incoming never is.
func Merge[N any](e Editor[N], base, incoming N) (N, error) {
	m := &merger[N]{e: e}
	return m.merge(base, incoming)
}

type merger[N any] struct {
	e    Editor[N]
	path []string
}

func (m *merger[N]) merge(base, in N) (N, error) {
	var zero N
	if len(m.path) > MaxDepth {
		return zero, &DepthError{Pointer: Join(m.path...), Max: MaxDepth}
	}
	e := m.e
	switch e.Kind(base) {
	case Array:
		if e.Kind(in) != Array {
			return e.Append(base, e.Clone(in)), nil
		}
		n := e.Len(in)
		elems := make([]N, n)
		for i := range n {
			elems[i] = e.Clone(e.Index(in, i))
		}
		return e.Append(base, elems...), nil
	case Object:
		if e.Kind(in) != Object {
			return zero, &TypeConflictError{
				Pointer:  Join(m.path...),
				Base:     e.Describe(base),
				Incoming: e.Describe(in),
			}
		}
		for _, k := range e.Keys(in) {
			iv, _ := e.Field(in, k)
			bv, ok := e.Field(base, k)
			if !ok {
				base = e.SetField(base, k, e.Clone(iv))
				continue
			}
			m.path = append(m.path, k)
			res, err := m.merge(bv, iv)
			m.path = m.path[:len(m.path)-1]
			if err != nil {
				return zero, err
			}
			base = e.SetField(base, k, res)
		}
		return base, nil
	default:
		if debug.Merge() {
			debug.Logf("merge %s: replace %s with %s\n",
				strconv.Quote(Join(m.path...)), e.Describe(base), e.Describe(in))
		}
		return e.Clone(in), nil
	}
}
