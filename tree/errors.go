package tree

import (
	"errors"
	"fmt"

	"github.com/signadot/valuefmt/apperr"
)

var (
	ErrTypeConflict = errors.New("type conflict")
	ErrTooDeep      = errors.New("nesting too deep")
)

// TypeConflictError reports an Object base merged with a non-Object.
type TypeConflictError struct {
	Pointer  string
	Base     string
	Incoming string
}

func (e *TypeConflictError) Error() string {
	return fmt.Sprintf("merge at %q: %v: cannot merge %s into %s", e.Pointer, ErrTypeConflict, e.Incoming, e.Base)
}

func (e *TypeConflictError) Unwrap() []error {
	return []error{ErrTypeConflict, apperr.ErrMerge}
}

type DepthError struct {
	Pointer string
	Max     int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("at %q: %v (max %d)", e.Pointer, ErrTooDeep, e.Max)
}

func (e *DepthError) Unwrap() []error {
	return []error{ErrTooDeep, apperr.ErrData}
}
