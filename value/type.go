package value

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	I32Type
	I64Type
	U32Type
	U64Type
	F32Type
	F64Type
	StringType
	BinaryType
	ArrayType
	ObjectType
	DateType
	TimeType
	DateTimeType
	YearMonthType
)

var typeNames = map[Type]string{
	NullType:      "Null",
	BoolType:      "Bool",
	I32Type:       "I32",
	I64Type:       "I64",
	U32Type:       "U32",
	U64Type:       "U64",
	F32Type:       "F32",
	F64Type:       "F64",
	StringType:    "String",
	BinaryType:    "Binary",
	ArrayType:     "Array",
	ObjectType:    "Object",
	DateType:      "Date",
	TimeType:      "Time",
	DateTimeType:  "DateTime",
	YearMonthType: "YearMonth",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		I32Type,
		I64Type,
		U32Type,
		U64Type,
		F32Type,
		F64Type,
		StringType,
		BinaryType,
		ArrayType,
		ObjectType,
		DateType,
		TimeType,
		DateTimeType,
		YearMonthType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumber() bool {
	switch t {
	case I32Type, I64Type, U32Type, U64Type, F32Type, F64Type:
		return true
	}
	return false
}

func (t Type) IsCalendar() bool {
	switch t {
	case DateType, TimeType, DateTimeType, YearMonthType:
		return true
	}
	return false
}
