package value

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/signadot/valuefmt/apperr"
)

// ParseNumber classifies numeric text: text with a fraction or exponent
// is F64, an integer fitting int64 is I64, one fitting uint64 is U64,
// and larger integers fall back to F64.
func ParseNumber(s string) (*Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromI64(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return FromU64(u), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return nil, apperr.Errorf(apperr.ErrInternal, "unclassifiable number %q", s).WithCause(err)
	}
	return FromF64(f), nil
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// Interface returns v as plain Go data: nil, bool, int32, int64,
// uint32, uint64, float32, float64, string, []byte, []any and
// map[string]any. Calendar values become their canonical strings.
func (v *Value) Interface() any {
	switch v.typ() {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case I32Type:
		return int32(v.Int)
	case I64Type:
		return v.Int
	case U32Type:
		return uint32(v.Uint)
	case U64Type:
		return v.Uint
	case F32Type:
		return float32(v.Float)
	case F64Type:
		return v.Float
	case StringType:
		return v.Str
	case BinaryType:
		return v.Binary
	case ArrayType:
		res := make([]any, len(v.Values))
		for i, x := range v.Values {
			res[i] = x.Interface()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.Values))
		for i, k := range v.Fields {
			res[k] = v.Values[i].Interface()
		}
		return res
	}
	s, _ := v.CalendarString()
	return s
}

func (v *Value) MarshalJSON() ([]byte, error) {
	d, err := json.Marshal(v.Interface())
	if err != nil {
		return nil, apperr.Raise(apperr.ErrSerialize, "value to json").WithCause(err)
	}
	return d, nil
}

// FromInterface builds a Value from plain Go data. Besides the types
// Interface returns it accepts other integer and float kinds,
// json.Number, time.Time (as DateTime), *Value, slices, arrays, maps
// with string keys, and structs, which are read through their json
// tags.
func FromInterface(x any) (*Value, error) {
	w := &Walk{Format: "go"}
	return fromInterface(w, x)
}

func fromInterface(w *Walk, x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t.Clone(), nil
	case Value:
		return t.Clone(), nil
	case bool:
		return FromBool(t), nil
	case int32:
		return FromI32(t), nil
	case int64:
		return FromI64(t), nil
	case uint32:
		return FromU32(t), nil
	case uint64:
		return FromU64(t), nil
	case float32:
		return FromF32(t), nil
	case float64:
		return FromF64(t), nil
	case string:
		return FromString(t), nil
	case []byte:
		return FromBinary(t), nil
	case json.Number:
		n, err := ParseNumber(t.String())
		if err != nil {
			return nil, w.Fail(err)
		}
		return n, nil
	case time.Time:
		return FromDateTime(t), nil
	case []any:
		res := &Value{Type: ArrayType, Values: make([]*Value, len(t))}
		for i, e := range t {
			if err := w.Enter(strconv.Itoa(i)); err != nil {
				return nil, err
			}
			c, err := fromInterface(w, e)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Values[i] = c
		}
		return res, nil
	case map[string]any:
		res := Object()
		for k, e := range t {
			if err := w.Enter(k); err != nil {
				return nil, err
			}
			c, err := fromInterface(w, e)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Set(k, c)
		}
		return res, nil
	}
	return fromReflect(w, reflect.ValueOf(x))
}

func fromReflect(w *Walk, rv reflect.Value) (*Value, error) {
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return FromI32(int32(rv.Int())), nil
	case reflect.Int, reflect.Int64:
		return FromI64(rv.Int()), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return FromU32(uint32(rv.Uint())), nil
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return FromU64(rv.Uint()), nil
	case reflect.Float32:
		return FromF32(float32(rv.Float())), nil
	case reflect.Float64:
		return FromF64(rv.Float()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromInterface(w, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return FromBinary(b), nil
		}
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return fromInterface(w, elems)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, w.Unsupported("map key type %s", rv.Type().Key())
		}
		if rv.IsNil() {
			return Null(), nil
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return fromInterface(w, m)
	case reflect.Struct:
		m := map[string]any{}
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &m, TagName: "json"})
		if err == nil {
			err = dec.Decode(rv.Interface())
		}
		if err != nil {
			return nil, w.Fail(err)
		}
		return fromInterface(w, m)
	}
	return nil, w.Unsupported("go type %s", rv.Type())
}

// Decode binds v onto dst, a pointer to a struct, map, slice or scalar,
// matching object keys to json struct tags. Calendar values and strings
// in a calendar form decode into time.Time fields.
func (v *Value) Decode(dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     dst,
		TagName:    "json",
		DecodeHook: stringToTime,
	})
	if err != nil {
		return apperr.Raise(apperr.ErrArgument, "decode target").WithCause(err)
	}
	if err := dec.Decode(v.Interface()); err != nil {
		return apperr.Raise(apperr.ErrDeserialize, fmt.Sprintf("value to %T", dst)).WithCause(err)
	}
	return nil
}

var timeType = reflect.TypeFor[time.Time]()

func stringToTime(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != timeType {
		return data, nil
	}
	s := reflect.ValueOf(data).String()
	for _, l := range []string{DateTimeLayout, DateLayout, YearMonthLayout, TimeLayout, time.RFC3339Nano} {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%q is not a date or time", s)
}

// FormatFloat renders f so that it reads back as a float: the result
// always has a fraction or an exponent.
func FormatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
