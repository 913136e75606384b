package jsonval

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/signadot/valuefmt/debug"
	"github.com/signadot/valuefmt/value"
)

const formatName = "json"

func ToValue(n any) (*value.Value, error) {
	w := &value.Walk{Format: formatName}
	v, err := toValue(w, n)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.Logf("json to value: %s\n", v)
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
	case json.Number:
		v, err := value.ParseNumber(x.String())
		if err != nil {
			return nil, w.Fail(err)
		}
		return v, nil
	case float64:
		return value.FromF64(x), nil
	case float32:
		return value.FromF64(float64(x)), nil
	case int:
		return value.FromI64(int64(x)), nil
	case int8:
		return value.FromI64(int64(x)), nil
	case int16:
		return value.FromI64(int64(x)), nil
	case int32:
		return value.FromI64(int64(x)), nil
	case int64:
		return value.FromI64(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
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
	return nil, w.Unsupported("json node of type %T", n)
}

func fromUint(u uint64) *value.Value {
	if u <= math.MaxInt64 {
		return value.FromI64(int64(u))
	}
	return value.FromU64(u)
}

func FromValue(v *value.Value) (any, error) {
	w := &value.Walk{Format: formatName}
	return fromValue(w, v)
}

func fromValue(w *value.Walk, v *value.Value) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch v.Type {
	case value.NullType:
		return nil, nil
	case value.BoolType:
		return v.Bool, nil
	case value.I32Type, value.I64Type:
		return v.Int, nil
	case value.U32Type, value.U64Type:
		return v.Uint, nil
	case value.F32Type, value.F64Type:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return nil, w.Unsupported("non-finite float %v", v.Float)
		}
		bits := 64
		if v.Type == value.F32Type {
			bits = 32
		}
		return json.Number(value.FormatFloat(v.Float, bits)), nil
	case value.StringType:
		return v.Str, nil
	case value.BinaryType:
		return nil, w.Unsupported("binary")
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
	if s, ok := v.CalendarString(); ok {
		return s, nil
	}
	return nil, w.Unsupported("value type %s", v.Type)
}
