package anybox

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrMoved        = errors.New("value already moved out")
	ErrEmpty        = errors.New("box is empty")
)

// Error is the panic value for Box misuse.
type Error struct {
	Op   string
	Err  error
	Want string
	Have string
}

func (e *Error) Error() string {
	if e.Err == ErrTypeMismatch {
		return fmt.Sprintf("anybox: %s: %v: want %s, have %s", e.Op, e.Err, e.Want, e.Have)
	}
	if e.Have == "" {
		return fmt.Sprintf("anybox: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("anybox: %s %s: %v", e.Op, e.Have, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func mismatch(op string, want, have reflect.Type) *Error {
	return &Error{Op: op, Err: ErrTypeMismatch, Want: want.String(), Have: have.String()}
}
