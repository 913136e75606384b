package tree

// Kind is the structural shape of a node.
type Kind int

const (
	Scalar Kind = iota
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "Scalar"
	case Array:
		return "Array"
	case Object:
		return "Object"
	}
	return "<unknown kind>"
}

// View gives read access to the structure of trees with nodes of type N.
//
// Index is only called on Array nodes with 0 <= i < Len, and Keys and
// Field only on Object nodes.
type View[N any] interface {
	Kind(n N) Kind
	Len(n N) int
	Index(n N, i int) N
	Keys(n N) []string
	Field(n N, key string) (N, bool)
	// Describe names the variant of n for error messages.
	Describe(n N) string
}

// Editor extends View with the mutations needed by Merge.
//
// Append and SetField may modify their first argument in place; callers
// must use the returned node.
type Editor[N any] interface {
	View[N]
	Clone(n N) N
	Append(arr N, elems ...N) N
	SetField(obj N, key string, v N) N
}
