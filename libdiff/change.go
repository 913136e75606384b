package libdiff

import (
	"github.com/signadot/valuefmt/encode"
	"github.com/signadot/valuefmt/value"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

var opNames = map[Op]string{
	Insert:  "insert",
	Delete:  "delete",
	Replace: "replace",
}

func (o Op) String() string {
	return opNames[o]
}

func (o Op) symbol() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is one difference found by [Diff]. Pointer is an RFC 6901
// pointer; deletions are addressed in the old value, everything else in
// the new one.
type Change struct {
	Op      Op
	Pointer string
	From    *value.Value
	To      *value.Value
}

func MakeChange(ptr string, from, to *value.Value) Change {
	switch {
	case from == nil:
		return Change{Op: Insert, Pointer: ptr, To: to}
	case to == nil:
		return Change{Op: Delete, Pointer: ptr, From: from}
	default:
		return Change{Op: Replace, Pointer: ptr, From: from, To: to}
	}
}

func (c Change) String() string {
	ptr := c.Pointer
	if ptr == "" {
		ptr = "/"
	}
	flow := encode.EncodeBrackets(true)
	switch c.Op {
	case Insert:
		return "+ " + ptr + ": " + encode.MustString(c.To, flow)
	case Delete:
		return "- " + ptr + ": " + encode.MustString(c.From, flow)
	}
	return c.Op.symbol() + " " + ptr + ": " + encode.MustString(c.From, flow) + " -> " + encode.MustString(c.To, flow)
}

// Value renders c as an object with op, path and from/to fields.
func (c Change) Value() *value.Value {
	res := value.Object()
	res.Set("op", value.FromString(c.Op.String()))
	res.Set("path", value.FromString(c.Pointer))
	if c.From != nil {
		res.Set("from", c.From.Clone())
	}
	if c.To != nil {
		res.Set("to", c.To.Clone())
	}
	return res
}

func Report(changes []Change) *value.Value {
	res := value.Array()
	for i := range changes {
		res.Append(changes[i].Value())
	}
	return res
}
