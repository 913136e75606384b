package value

import (
	"errors"
	"fmt"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/tree"
)

var ErrUnsupportedConversion = errors.New("unsupported conversion")

// CastError reports a typed accessor applied to a Value of another
// shape, or a numeric narrowing that does not fit.
type CastError struct {
	Want string
	Have Type
	Err  error
}

func (e *CastError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot cast %s to %s: %v", e.Have, e.Want, e.Err)
	}
	return fmt.Sprintf("cannot cast %s to %s", e.Have, e.Want)
}

func (e *CastError) Unwrap() []error {
	if e.Err == nil {
		return []error{apperr.ErrCast}
	}
	return []error{apperr.ErrCast, e.Err}
}

// ConversionError reports a failure converting between a Value and a
// format tree, at the pointer of the offending node.
type ConversionError struct {
	Format  string
	Pointer string
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: at %q: %v", e.Format, e.Pointer, e.Err)
}

func (e *ConversionError) Unwrap() []error {
	return []error{apperr.ErrConvert, e.Err}
}

// Walk tracks the position of a recursive conversion for error reporting
// and bounds its depth.
type Walk struct {
	Format string
	path   []string
}

// Enter descends into the child at tok.
func (w *Walk) Enter(tok string) error {
	if len(w.path) >= tree.MaxDepth {
		return w.Fail(&tree.DepthError{Pointer: tree.Join(w.path...), Max: tree.MaxDepth})
	}
	w.path = append(w.path, tok)
	return nil
}

func (w *Walk) Leave() {
	w.path = w.path[:len(w.path)-1]
}

func (w *Walk) Pointer() string {
	return tree.Join(w.path...)
}

// Fail wraps err with the current position unless it already carries
// one.
func (w *Walk) Fail(err error) error {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return err
	}
	return &ConversionError{Format: w.Format, Pointer: w.Pointer(), Err: err}
}

// Unsupported reports a node with no counterpart in the target.
func (w *Walk) Unsupported(format string, args ...any) error {
	return w.Fail(fmt.Errorf("%w: %s", ErrUnsupportedConversion, fmt.Sprintf(format, args...)))
}
