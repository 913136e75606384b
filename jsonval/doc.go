// Package jsonval converts between Values and generic JSON trees.
//
// A JSON tree is built from nil, bool, string, json.Number, float32,
// float64, the integer kinds, []any and map[string]any, as produced by
// Decode or by encoding/json with UseNumber.
//
// JSON does not distinguish integer widths, so ToValue classifies
// numbers as I64, U64 or F64 by their text. FromValue widens I32 and U32
// to int64 and uint64 and writes floats as json.Number text that always
// carries a fraction or exponent, so they decode as floats again. Binary
// values and non-finite floats have no JSON form and fail with
// value.ErrUnsupportedConversion; calendar values are written as their
// canonical strings.
package jsonval
