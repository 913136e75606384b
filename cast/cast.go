// Package cast provides overflow-checked numeric conversions.
package cast

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/signadot/valuefmt/apperr"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

var ErrOutOfRange = errors.New("out of range")

// RangeError reports a value that does not fit the target type.
type RangeError struct {
	Value string
	From  string
	To    string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cast %s %s to %s: %v", e.From, e.Value, e.To, ErrOutOfRange)
}

func (e *RangeError) Unwrap() []error {
	return []error{ErrOutOfRange, apperr.ErrCast}
}

// Int converts n to To, failing if the value would change.
func Int[To, From Integer](n From) (To, error) {
	t := To(n)
	if From(t) != n || (n < 0) != (t < 0) {
		return 0, rangeError[To](n)
	}
	return t, nil
}

// F64ToF32 narrows f, failing for finite values beyond the float32
// range. Precision loss within range is accepted; NaN and infinities
// carry over.
func F64ToF32(f float64) (float32, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return float32(f), nil
	}
	if math.Abs(f) > math.MaxFloat32 {
		return 0, rangeError[float32](f)
	}
	return float32(f), nil
}

func F32ToF64(f float32) float64 {
	return float64(f)
}

// FloatToInt converts f to To when f is integral and in range.
func FloatToInt[To Integer](f float64) (To, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, rangeError[To](f)
	}
	t := To(f)
	if float64(t) != f {
		return 0, rangeError[To](f)
	}
	return t, nil
}

func rangeError[To any, From any](n From) *RangeError {
	return &RangeError{
		Value: fmt.Sprint(n),
		From:  reflect.TypeFor[From]().String(),
		To:    reflect.TypeFor[To]().String(),
	}
}
