// Package value provides the format independent Value model.
//
// # Overview
//
// A Value is a tagged union covering everything JSON, YAML, TOML and
// the binary document format can carry: null, booleans, signed and
// unsigned 32 and 64 bit integers, 32 and 64 bit floats, strings, byte
// strings, arrays, objects and four calendar types. The format packages
// (jsonval, yamlval, tomlval, binval) convert their native trees to and
// from Values.
//
// # Value Structure
//
// The Type field indicates which of the other fields hold the payload:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - I32Type, I64Type: Int
//   - U32Type, U64Type: Uint
//   - F32Type, F64Type: Float
//   - StringType: Str
//   - BinaryType: Binary
//   - DateType, TimeType, DateTimeType, YearMonthType: Time, in UTC
//   - ArrayType: Values
//   - ObjectType: Fields and Values
//
// For ObjectType values, Fields[i] is the key for Values[i]. Fields are
// unique and sorted, so two objects with the same entries have the same
// layout no matter how they were built. Use Set and Delete to keep that
// so.
//
// A Value owns its children. Values are never shared between two
// parents; Clone before reusing a subtree.
//
// # Creating Values
//
//	v := value.FromMap(map[string]*value.Value{
//	    "name": value.FromString("x"),
//	    "ids":  value.FromSlice([]*value.Value{value.FromI64(1)}),
//	})
//
// # Calendar Types
//
// Calendar values have canonical text forms:
//
//   - Date: 2006-01-02
//   - Time: 15:04:05
//   - DateTime: 2006-01-02 15:04:05
//   - YearMonth: 2006-01
//
// Formats without native calendar types carry these as strings, and the
// calendar accessors parse them back.
//
// # Merge and Pointer
//
// Merge and Pointer implement deep merge and RFC 6901 navigation using
// package tree, the same code that serves every format tree.
//
// # Thread Safety
//
// Values are not safe for concurrent mutation.
package value
