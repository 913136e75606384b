package value

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// String returns a debug rendering such as Object{a: I64(1)}.
func (v *Value) String() string {
	var b strings.Builder
	v.writeTo(&b)
	return b.String()
}

func (v *Value) writeTo(b *strings.Builder) {
	t := v.typ()
	switch t {
	case NullType:
		b.WriteString("Null")
		return
	case ArrayType:
		b.WriteString("Array[")
		for i, x := range v.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			x.writeTo(b)
		}
		b.WriteByte(']')
		return
	case ObjectType:
		b.WriteString("Object{")
		for i, k := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			v.Values[i].writeTo(b)
		}
		b.WriteByte('}')
		return
	}
	b.WriteString(t.String())
	b.WriteByte('(')
	switch t {
	case BoolType:
		b.WriteString(strconv.FormatBool(v.Bool))
	case I32Type, I64Type:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case U32Type, U64Type:
		b.WriteString(strconv.FormatUint(v.Uint, 10))
	case F32Type:
		b.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 32))
	case F64Type:
		b.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case StringType:
		b.WriteString(strconv.Quote(v.Str))
	case BinaryType:
		b.WriteString(hex.EncodeToString(v.Binary))
	default:
		s, _ := v.CalendarString()
		b.WriteString(s)
	}
	b.WriteByte(')')
}
