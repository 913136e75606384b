// Package tomlval converts between Values and generic TOML trees as
// produced by go-toml: int64, float64, string, bool, time.Time,
// toml.LocalDate, toml.LocalTime, toml.LocalDateTime, []any and
// map[string]any.
//
// TOML has no null and no unsigned integers. Null is written as the
// empty string; a nil node in a hand-built tree reads back as Null. U32
// is widened to int64 and U64 is narrowed to int64 when it fits, failing
// otherwise. Local dates, times and date-times map to the Date, Time and
// DateTime calendar types; offset date-times, which Value cannot
// represent, are read as RFC 3339 strings. YearMonth is written as a
// string.
package tomlval

import (
	"bytes"
	"math"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/debug"
	"github.com/signadot/valuefmt/tree"
	"github.com/signadot/valuefmt/value"
)

const formatName = "toml"

func ToValue(n any) (*value.Value, error) {
	w := &value.Walk{Format: formatName}
	v, err := toValue(w, n)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("toml to value: %s\n", v)
	}
	return v, nil
}

func toValue(w *value.Walk, n any) (*value.Value, error) {
	switch x := n.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.FromBool(x), nil
	case string:
		return value.FromString(x), nil
	case int64:
		return value.FromI64(x), nil
	case int:
		return value.FromI64(int64(x)), nil
	case int32:
		return value.FromI64(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return value.FromU64(x), nil
		}
		return value.FromI64(int64(x)), nil
	case uint32:
		return value.FromI64(int64(x)), nil
	case float64:
		return value.FromF64(x), nil
	case float32:
		return value.FromF64(float64(x)), nil
	case toml.LocalDate:
		return value.FromDate(x.AsTime(time.UTC)), nil
	case toml.LocalTime:
		return value.FromTime(time.Date(0, 1, 1, x.Hour, x.Minute, x.Second, 0, time.UTC)), nil
	case toml.LocalDateTime:
		return value.FromDateTime(x.AsTime(time.UTC)), nil
	case time.Time:
		return value.FromString(x.Format(time.RFC3339Nano)), nil
	case []any:
		res := value.Array()
		res.Values = make([]*value.Value, len(x))
		for i, e := range x {
			if err := w.Enter(strconv.Itoa(i)); err != nil {
				return nil, err
			}
			c, err := toValue(w, e)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Values[i] = c
		}
		return res, nil
	case map[string]any:
		res := value.Object()
		for k, e := range x {
			if err := w.Enter(k); err != nil {
				return nil, err
			}
			c, err := toValue(w, e)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res.Set(k, c)
		}
		return res, nil
	}
	return nil, w.Unsupported("toml node of type %T", n)
}

func FromValue(v *value.Value) (any, error) {
	w := &value.Walk{Format: formatName}
	return fromValue(w, v)
}

func fromValue(w *value.Walk, v *value.Value) (any, error) {
	if v == nil {
		return "", nil
	}
	switch v.Type {
	case value.NullType:
		return "", nil
	case value.BoolType:
		return v.Bool, nil
	case value.I32Type, value.I64Type, value.U32Type, value.U64Type:
		i, err := v.AsI64()
		if err != nil {
			return nil, w.Fail(err)
		}
		return i, nil
	case value.F32Type, value.F64Type:
		return v.Float, nil
	case value.StringType:
		return v.Str, nil
	case value.BinaryType:
		return nil, w.Unsupported("binary")
	case value.DateType:
		return localDate(v.Time), nil
	case value.TimeType:
		return localTime(v.Time), nil
	case value.DateTimeType:
		return toml.LocalDateTime{LocalDate: localDate(v.Time), LocalTime: localTime(v.Time)}, nil
	case value.YearMonthType:
		s, _ := v.CalendarString()
		return s, nil
	case value.ArrayType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			if err := w.Enter(strconv.Itoa(i)); err != nil {
				return nil, err
			}
			c, err := fromValue(w, e)
			w.Leave()
			if err != nil {
				return nil, err
			}
			res[i] = c
		}
		return res, nil
	case value.ObjectType:
		res := make(map[string]any, len(v.Values))
		for i, k := range v.Fields {
			if err := w.Enter(k); err != nil {
				return nil, err
			}
			c, err := fromValue(w, v.Values[i])
			w.Leave()
			if err != nil {
				return nil, err
			}
			res[k] = c
		}
		return res, nil
	}
	return nil, w.Unsupported("value type %s", v.Type)
}

func localDate(t time.Time) toml.LocalDate {
	y, m, d := t.Date()
	return toml.LocalDate{Year: y, Month: int(m), Day: d}
}

func localTime(t time.Time) toml.LocalTime {
	h, m, s := t.Clock()
	return toml.LocalTime{Hour: h, Minute: m, Second: s}
}

func Decode(data []byte) (any, error) {
	var n map[string]any
	if err := toml.Unmarshal(data, &n); err != nil {
		return nil, apperr.Raise(apperr.ErrDeserialize, formatName).WithCause(err)
	}
	if n == nil {
		n = map[string]any{}
	}
	return n, nil
}

// Encode writes n, which must be a table.
func Encode(n any) ([]byte, error) {
	if _, ok := n.(map[string]any); !ok {
		return nil, apperr.Errorf(apperr.ErrSerialize, "toml document root must be a table, got %s", tree.Native{}.Describe(n))
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(n); err != nil {
		return nil, apperr.Raise(apperr.ErrSerialize, formatName).WithCause(err)
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte) (*value.Value, error) {
	n, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return ToValue(n)
}

func Marshal(v *value.Value) ([]byte, error) {
	n, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	return Encode(n)
}

// Merge deep merges in into *base, storing the result in *base, and
// returns a copy of the result.
func Merge(base *any, in any) (any, error) {
	res, err := tree.Merge[any](tree.Native{}, *base, in)
	if err != nil {
		return nil, err
	}
	*base = res
	return tree.Native{}.Clone(res), nil
}

func Get(root any, pointer string) (any, bool) {
	return tree.Get[any](tree.Native{}, root, pointer)
}
