// Package binval implements the binary document format: a MessagePack
// data model with distinct 32 and 64 bit signed and unsigned integers,
// 32 and 64 bit floats, byte strings and extension values.
//
// Conversion between Node and Value is lossless for every Value that is
// not a calendar type. Calendar values are written as their canonical
// strings. Ext nodes and maps with non-string keys have no Value
// counterpart.
package binval

import "slices"

type Kind uint8

const (
	NilKind Kind = iota
	BoolKind
	Int32Kind
	Int64Kind
	Uint32Kind
	Uint64Kind
	Float32Kind
	Float64Kind
	StringKind
	BinaryKind
	ArrayKind
	MapKind
	ExtKind
)

func (k Kind) String() string {
	switch k {
	case NilKind:
		return "Nil"
	case BoolKind:
		return "Bool"
	case Int32Kind:
		return "Int32"
	case Int64Kind:
		return "Int64"
	case Uint32Kind:
		return "Uint32"
	case Uint64Kind:
		return "Uint64"
	case Float32Kind:
		return "Float32"
	case Float64Kind:
		return "Float64"
	case StringKind:
		return "String"
	case BinaryKind:
		return "Binary"
	case ArrayKind:
		return "Array"
	case MapKind:
		return "Map"
	case ExtKind:
		return "Ext"
	}
	return "<unknown kind>"
}

// Node is a binary document node. Like value.Value, the Kind selects
// which fields hold the payload: Int for Int32 and Int64, Uint for
// Uint32 and Uint64, Float for both floats, Bytes for Binary and Ext.
type Node struct {
	Kind    Kind
	Bool    bool
	Int     int64
	Uint    uint64
	Float   float64
	Str     string
	Bytes   []byte
	ExtType int8
	Elems   []*Node
	Entries []Entry
}

// Entry is a map entry. Map keys may be any node, and entries keep
// their encoded order.
type Entry struct {
	Key   *Node
	Value *Node
}

func Nil() *Node {
	return &Node{Kind: NilKind}
}

func FromBool(b bool) *Node {
	return &Node{Kind: BoolKind, Bool: b}
}

func FromInt32(i int32) *Node {
	return &Node{Kind: Int32Kind, Int: int64(i)}
}

func FromInt64(i int64) *Node {
	return &Node{Kind: Int64Kind, Int: i}
}

func FromUint32(u uint32) *Node {
	return &Node{Kind: Uint32Kind, Uint: uint64(u)}
}

func FromUint64(u uint64) *Node {
	return &Node{Kind: Uint64Kind, Uint: u}
}

func FromFloat32(f float32) *Node {
	return &Node{Kind: Float32Kind, Float: float64(f)}
}

func FromFloat64(f float64) *Node {
	return &Node{Kind: Float64Kind, Float: f}
}

func FromString(s string) *Node {
	return &Node{Kind: StringKind, Str: s}
}

func FromBinary(b []byte) *Node {
	if b == nil {
		b = []byte{}
	}
	return &Node{Kind: BinaryKind, Bytes: b}
}

func FromExt(typ int8, data []byte) *Node {
	return &Node{Kind: ExtKind, ExtType: typ, Bytes: data}
}

func FromArray(elems ...*Node) *Node {
	if elems == nil {
		elems = []*Node{}
	}
	return &Node{Kind: ArrayKind, Elems: elems}
}

func FromEntries(entries ...Entry) *Node {
	if entries == nil {
		entries = []Entry{}
	}
	return &Node{Kind: MapKind, Entries: entries}
}

func (n *Node) kind() Kind {
	if n == nil {
		return NilKind
	}
	return n.Kind
}

// Lookup returns the value of the first entry with a String key equal
// to key.
func (n *Node) Lookup(key string) (*Node, bool) {
	i := n.entryIndex(key)
	if i < 0 {
		return nil, false
	}
	return n.Entries[i].Value, true
}

func (n *Node) entryIndex(key string) int {
	if n.kind() != MapKind {
		return -1
	}
	for i, e := range n.Entries {
		if e.Key.kind() == StringKind && e.Key.Str == key {
			return i
		}
	}
	return -1
}

func (n *Node) Clone() *Node {
	if n == nil {
		return Nil()
	}
	res := *n
	if n.Bytes != nil {
		res.Bytes = slices.Clone(n.Bytes)
	}
	if n.Elems != nil {
		res.Elems = make([]*Node, len(n.Elems))
		for i, e := range n.Elems {
			res.Elems[i] = e.Clone()
		}
	}
	if n.Entries != nil {
		res.Entries = make([]Entry, len(n.Entries))
		for i, e := range n.Entries {
			res.Entries[i] = Entry{Key: e.Key.Clone(), Value: e.Value.Clone()}
		}
	}
	return &res
}
