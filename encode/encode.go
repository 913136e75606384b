// Package encode renders a [value.Value] as indented, optionally colored
// text for people to read.
//
// The block form resembles YAML; with [EncodeBrackets] everything is
// written in flow form. Binary values are written as base64 text tagged
// !binary and calendar values carry a tag naming their variant.
package encode

import (
	"bytes"
	"encoding/base64"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/value"
)

type EncState struct {
	depth, indent int
	brackets      bool
	types         bool

	buf   bytes.Buffer
	Color func(value.Type, ColorAttr, string) string
}

func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.brackets {
		es.flow(v)
	} else {
		es.block(v)
	}
	es.buf.WriteByte('\n')
	if _, err := w.Write(es.buf.Bytes()); err != nil {
		return apperr.Raise(apperr.ErrIO, "encode").WithCause(err)
	}
	return nil
}

func typeOf(v *value.Value) value.Type {
	if v == nil {
		return value.NullType
	}
	return v.Type
}

func (es *EncState) write(t value.Type, a ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	es.buf.WriteString(s)
}

func (es *EncState) writeNL() {
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

// nested reports whether v is written over several lines in block form.
func nested(v *value.Value) bool {
	switch typeOf(v) {
	case value.ArrayType, value.ObjectType:
		return v.Len() > 0
	}
	return false
}

func (es *EncState) block(v *value.Value) {
	if !nested(v) {
		es.flow(v)
		return
	}
	if v.Type == value.ObjectType {
		for i, k := range v.Fields {
			if i > 0 {
				es.writeNL()
			}
			es.write(value.ObjectType, FieldColor, quote(k))
			es.write(value.ObjectType, SepColor, ":")
			x := v.Values[i]
			if !nested(x) {
				es.buf.WriteByte(' ')
				es.flow(x)
				continue
			}
			es.depth++
			es.writeNL()
			es.block(x)
			es.depth--
		}
		return
	}
	for i, x := range v.Values {
		if i > 0 {
			es.writeNL()
		}
		es.write(value.ArrayType, SepColor, "- ")
		es.depth++
		es.block(x)
		es.depth--
	}
}

func (es *EncState) flow(v *value.Value) {
	switch typeOf(v) {
	case value.ObjectType:
		es.write(value.ObjectType, SepColor, "{")
		for i, k := range v.Fields {
			if i > 0 {
				es.write(value.ObjectType, SepColor, ", ")
			}
			es.write(value.ObjectType, FieldColor, quote(k))
			es.write(value.ObjectType, SepColor, ": ")
			es.flow(v.Values[i])
		}
		es.write(value.ObjectType, SepColor, "}")
	case value.ArrayType:
		es.write(value.ArrayType, SepColor, "[")
		for i, x := range v.Values {
			if i > 0 {
				es.write(value.ArrayType, SepColor, ", ")
			}
			es.flow(x)
		}
		es.write(value.ArrayType, SepColor, "]")
	default:
		es.scalar(v)
	}
}

func (es *EncState) scalar(v *value.Value) {
	t := typeOf(v)
	if tag := es.tag(t); tag != "" {
		es.write(t, TagColor, tag)
		es.buf.WriteByte(' ')
	}
	es.write(t, ValueColor, scalarText(v))
}

func (es *EncState) tag(t value.Type) string {
	switch t {
	case value.BinaryType, value.DateType, value.TimeType, value.DateTimeType, value.YearMonthType:
		return "!" + strings.ToLower(t.String())
	case value.I32Type, value.U32Type, value.U64Type, value.F32Type:
		if es.types {
			return "!" + strings.ToLower(t.String())
		}
	}
	return ""
}

func scalarText(v *value.Value) string {
	switch typeOf(v) {
	case value.NullType:
		return "null"
	case value.BoolType:
		return strconv.FormatBool(v.Bool)
	case value.I32Type, value.I64Type:
		return strconv.FormatInt(v.Int, 10)
	case value.U32Type, value.U64Type:
		return strconv.FormatUint(v.Uint, 10)
	case value.F32Type:
		return floatText(v.Float, 32)
	case value.F64Type:
		return floatText(v.Float, 64)
	case value.StringType:
		return quote(v.Str)
	case value.BinaryType:
		return strconv.Quote(base64.StdEncoding.EncodeToString(v.Binary))
	}
	s, _ := v.CalendarString()
	return quote(s)
}

func floatText(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return value.FormatFloat(f, bits)
}

// quote returns s as is when it would read back as the same plain string.
func quote(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuote(s string) bool {
	switch s {
	case "", "null", "true", "false", "~":
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if strings.ContainsAny(s, ":#{}[],&*!|>'\"%@`\\\n\t") {
		return true
	}
	if s[0] == '-' || s[0] == '.' || s[0] == '?' {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	for _, r := range s {
		if !strconv.IsPrint(r) {
			return true
		}
	}
	return false
}
