package value

import (
	"time"

	"github.com/signadot/valuefmt/cast"
)

func (v *Value) castErr(want string, err error) *CastError {
	return &CastError{Want: want, Have: v.typ(), Err: err}
}

func (v *Value) IsNull() bool {
	return v.typ() == NullType
}

// IsEmpty reports whether a Null, String, Binary, Array or Object has
// no content. Other types yield a CastError.
func (v *Value) IsEmpty() (bool, error) {
	switch v.typ() {
	case NullType:
		return true, nil
	case StringType:
		return v.Str == "", nil
	case BinaryType:
		return len(v.Binary) == 0, nil
	case ArrayType, ObjectType:
		return len(v.Values) == 0, nil
	}
	return false, v.castErr("emptiness", nil)
}

// IsZero reports whether a Null or numeric value is zero. Other types
// yield a CastError.
func (v *Value) IsZero() (bool, error) {
	switch v.typ() {
	case NullType:
		return true, nil
	case I32Type, I64Type:
		return v.Int == 0, nil
	case U32Type, U64Type:
		return v.Uint == 0, nil
	case F32Type, F64Type:
		return v.Float == 0, nil
	}
	return false, v.castErr("zero", nil)
}

func (v *Value) AsNull() error {
	if v.typ() != NullType {
		return v.castErr("Null", nil)
	}
	return nil
}

func (v *Value) AsBool() (bool, error) {
	if v.typ() != BoolType {
		return false, v.castErr("Bool", nil)
	}
	return v.Bool, nil
}

func (v *Value) AsI32() (int32, error) {
	return asInt[int32](v, "I32")
}

func (v *Value) AsI64() (int64, error) {
	return asInt[int64](v, "I64")
}

func (v *Value) AsU32() (uint32, error) {
	return asInt[uint32](v, "U32")
}

func (v *Value) AsU64() (uint64, error) {
	return asInt[uint64](v, "U64")
}

func asInt[T cast.Integer](v *Value, want string) (T, error) {
	var (
		res T
		err error
	)
	switch v.typ() {
	case I32Type, I64Type:
		res, err = cast.Int[T](v.Int)
	case U32Type, U64Type:
		res, err = cast.Int[T](v.Uint)
	default:
		return 0, v.castErr(want, nil)
	}
	if err != nil {
		return 0, v.castErr(want, err)
	}
	return res, nil
}

func (v *Value) AsF32() (float32, error) {
	switch v.typ() {
	case F32Type:
		return float32(v.Float), nil
	case F64Type:
		f, err := cast.F64ToF32(v.Float)
		if err != nil {
			return 0, v.castErr("F32", err)
		}
		return f, nil
	}
	return 0, v.castErr("F32", nil)
}

func (v *Value) AsF64() (float64, error) {
	switch v.typ() {
	case F32Type, F64Type:
		return v.Float, nil
	}
	return 0, v.castErr("F64", nil)
}

func (v *Value) AsStr() (string, error) {
	if v.typ() != StringType {
		return "", v.castErr("String", nil)
	}
	return v.Str, nil
}

func (v *Value) AsBinary() ([]byte, error) {
	if v.typ() != BinaryType {
		return nil, v.castErr("Binary", nil)
	}
	return v.Binary, nil
}

// AsArray returns the elements of an Array. The slice is shared with v.
func (v *Value) AsArray() ([]*Value, error) {
	if v.typ() != ArrayType {
		return nil, v.castErr("Array", nil)
	}
	return v.Values, nil
}

// AsObject returns the entries of an Object as a map sharing the
// children of v.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.typ() != ObjectType {
		return nil, v.castErr("Object", nil)
	}
	res := make(map[string]*Value, len(v.Fields))
	for i, k := range v.Fields {
		res[k] = v.Values[i]
	}
	return res, nil
}

// AsDate returns the date of a Date, or of a String in Date form.
func (v *Value) AsDate() (time.Time, error) {
	return v.asCalendar(DateType)
}

func (v *Value) AsTime() (time.Time, error) {
	return v.asCalendar(TimeType)
}

func (v *Value) AsDateTime() (time.Time, error) {
	return v.asCalendar(DateTimeType)
}

// AsYearMonth also accepts Date and DateTime values, dropping the day
// and clock.
func (v *Value) AsYearMonth() (time.Time, error) {
	switch v.typ() {
	case DateType, DateTimeType:
		y, m, _ := v.Time.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return v.asCalendar(YearMonthType)
}

func (v *Value) asCalendar(typ Type) (time.Time, error) {
	switch v.typ() {
	case typ:
		return v.Time, nil
	case StringType:
		p, err := parseCalendar(typ, v.Str)
		if err != nil {
			return time.Time{}, v.castErr(typ.String(), err)
		}
		return p.Time, nil
	}
	return time.Time{}, v.castErr(typ.String(), nil)
}
