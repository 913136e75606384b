package value

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values order first by rank:
// Null < Bool < numbers < String < Binary < calendar < Array < Object.
// Numbers of different types compare by magnitude, with ties broken by
// Type. Nil values compare as Null.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	ta, tb := a.typ(), b.typ()
	if ra, rb := rank(ta), rank(tb); ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ta {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case I32Type, I64Type, U32Type, U64Type, F32Type, F64Type:
		if c := compareNumbers(a, b); c != 0 {
			return c
		}
		return cmp.Compare(ta, tb)
	case StringType:
		return strings.Compare(a.Str, b.Str)
	case BinaryType:
		return bytes.Compare(a.Binary, b.Binary)
	case DateType, TimeType, DateTimeType, YearMonthType:
		if ta != tb {
			return cmp.Compare(ta, tb)
		}
		return a.Time.Compare(b.Time)
	case ArrayType:
		return compareChildren(a, b)
	case ObjectType:
		n := min(len(a.Fields), len(b.Fields))
		for i := range n {
			if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(len(a.Fields), len(b.Fields)); c != 0 {
			return c
		}
		return compareChildren(a, b)
	}
	return 0
}

func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case I32Type, I64Type, U32Type, U64Type, F32Type, F64Type:
		return 2
	case StringType:
		return 3
	case BinaryType:
		return 4
	case DateType, TimeType, DateTimeType, YearMonthType:
		return 5
	case ArrayType:
		return 6
	case ObjectType:
		return 7
	}
	return 100
}

func compareChildren(a, b *Value) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func isFloat(t Type) bool {
	return t == F32Type || t == F64Type
}

func isSigned(t Type) bool {
	return t == I32Type || t == I64Type
}

func compareNumbers(a, b *Value) int {
	ta, tb := a.Type, b.Type
	switch {
	case isFloat(ta) || isFloat(tb):
		return cmp.Compare(a.float(), b.float())
	case isSigned(ta) && isSigned(tb):
		return cmp.Compare(a.Int, b.Int)
	case !isSigned(ta) && !isSigned(tb):
		return cmp.Compare(a.Uint, b.Uint)
	case isSigned(ta):
		if a.Int < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int), b.Uint)
	default:
		if b.Int < 0 {
			return 1
		}
		return cmp.Compare(a.Uint, uint64(b.Int))
	}
}

func (v *Value) float() float64 {
	switch v.Type {
	case I32Type, I64Type:
		return float64(v.Int)
	case U32Type, U64Type:
		return float64(v.Uint)
	}
	return v.Float
}
