package value

import (
	"maps"
	"slices"
	"time"
)

type Value struct {
	Type Type

	Bool   bool
	Int    int64
	Uint   uint64
	Float  float64
	Str    string
	Binary []byte
	Time   time.Time

	Fields []string
	Values []*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(b bool) *Value {
	return &Value{Type: BoolType, Bool: b}
}

func FromI32(i int32) *Value {
	return &Value{Type: I32Type, Int: int64(i)}
}

func FromI64(i int64) *Value {
	return &Value{Type: I64Type, Int: i}
}

func FromU32(u uint32) *Value {
	return &Value{Type: U32Type, Uint: uint64(u)}
}

func FromU64(u uint64) *Value {
	return &Value{Type: U64Type, Uint: u}
}

func FromF32(f float32) *Value {
	return &Value{Type: F32Type, Float: float64(f)}
}

func FromF64(f float64) *Value {
	return &Value{Type: F64Type, Float: f}
}

func FromString(s string) *Value {
	return &Value{Type: StringType, Str: s}
}

// FromBinary returns a Binary value holding b. b is not copied.
func FromBinary(b []byte) *Value {
	if b == nil {
		b = []byte{}
	}
	return &Value{Type: BinaryType, Binary: b}
}

// FromSlice returns an Array of vs, taking ownership of its elements.
// nil elements become Null.
func FromSlice(vs []*Value) *Value {
	res := &Value{Type: ArrayType, Values: make([]*Value, len(vs))}
	for i, v := range vs {
		res.Values[i] = orNull(v)
	}
	return res
}

// FromMap returns an Object with the entries of m in key order.
func FromMap(m map[string]*Value) *Value {
	res := &Value{Type: ObjectType}
	res.Fields = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Value, len(res.Fields))
	for i, k := range res.Fields {
		res.Values[i] = orNull(m[k])
	}
	return res
}

// Object returns an empty Object.
func Object() *Value {
	return &Value{Type: ObjectType}
}

// Array returns an Array of vs.
func Array(vs ...*Value) *Value {
	return FromSlice(vs)
}

func orNull(v *Value) *Value {
	if v == nil {
		return Null()
	}
	return v
}

func (v *Value) typ() Type {
	if v == nil {
		return NullType
	}
	return v.Type
}

// Len returns the number of elements of an Array or entries of an
// Object, and 0 for anything else.
func (v *Value) Len() int {
	switch v.typ() {
	case ArrayType, ObjectType:
		return len(v.Values)
	}
	return 0
}

// Keys returns the keys of an Object in order.
func (v *Value) Keys() []string {
	if v.typ() != ObjectType {
		return nil
	}
	return slices.Clone(v.Fields)
}

// Get returns the value stored under key in an Object.
func (v *Value) Get(key string) (*Value, bool) {
	if v.typ() != ObjectType {
		return nil, false
	}
	i, ok := slices.BinarySearch(v.Fields, key)
	if !ok {
		return nil, false
	}
	return v.Values[i], true
}

// Set stores x under key, keeping Fields sorted. It panics if v is not
// an Object.
func (v *Value) Set(key string, x *Value) {
	if v.typ() != ObjectType {
		panic("value: Set on " + v.typ().String())
	}
	x = orNull(x)
	i, ok := slices.BinarySearch(v.Fields, key)
	if ok {
		v.Values[i] = x
		return
	}
	v.Fields = slices.Insert(v.Fields, i, key)
	v.Values = slices.Insert(v.Values, i, x)
}

// Delete removes key from an Object, returning the removed value.
func (v *Value) Delete(key string) (*Value, bool) {
	if v.typ() != ObjectType {
		return nil, false
	}
	i, ok := slices.BinarySearch(v.Fields, key)
	if !ok {
		return nil, false
	}
	old := v.Values[i]
	v.Fields = slices.Delete(v.Fields, i, i+1)
	v.Values = slices.Delete(v.Values, i, i+1)
	return old, true
}

// Append adds elements to an Array. It panics if v is not an Array.
func (v *Value) Append(xs ...*Value) {
	if v.typ() != ArrayType {
		panic("value: Append on " + v.typ().String())
	}
	for _, x := range xs {
		v.Values = append(v.Values, orNull(x))
	}
}

func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	res := *v
	if v.Binary != nil {
		res.Binary = slices.Clone(v.Binary)
	}
	if v.Fields != nil {
		res.Fields = slices.Clone(v.Fields)
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, x := range v.Values {
			res.Values[i] = x.Clone()
		}
	}
	return &res
}
