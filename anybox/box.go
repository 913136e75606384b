package anybox

import (
	"io"
	"reflect"

	"github.com/signadot/valuefmt/debug"
)

type state uint8

const (
	empty state = iota
	full
	moved
)

// Box holds at most one value. The zero Box is empty and untyped; its
// first Replace fixes its type.
type Box struct {
	typ   reflect.Type
	slot  any // *V while full
	state state
}

// Empty returns an empty Box typed for V.
func Empty[V any]() *Box {
	return &Box{typ: reflect.TypeFor[V]()}
}

// New returns a Box holding v.
func New[V any](v V) *Box {
	b := Empty[V]()
	Replace(b, v)
	return b
}

// Replace stores v in b, dropping any previous occupant and clearing the
// moved state.
func Replace[V any](b *Box, v V) {
	t := reflect.TypeFor[V]()
	if b.typ != nil && b.typ != t {
		panic(mismatch("replace", b.typ, t))
	}
	b.Drop()
	p := new(V)
	*p = v
	b.typ = t
	b.slot = p
	b.state = full
	if debug.Box() {
		debug.Logf("anybox: replace %s\n", t)
	}
}

// Borrow returns a pointer to the occupant. Writes through the pointer
// modify the boxed value.
func Borrow[V any](b *Box) *V {
	return slot[V](b, "borrow")
}

// Take moves the occupant out of b. Any later access other than Replace
// panics.
func Take[V any](b *Box) V {
	p := slot[V](b, "take")
	v := *p
	b.slot = nil
	b.state = moved
	if debug.Box() {
		debug.Logf("anybox: take %s\n", b.typ)
	}
	return v
}

// TakeForce returns the occupant like Take but leaves it in place. It is
// meant for values the caller knows can be handed out more than once.
func TakeForce[V any](b *Box) V {
	return *slot[V](b, "take_force")
}

func slot[V any](b *Box, op string) *V {
	t := reflect.TypeFor[V]()
	if b.typ != nil && b.typ != t {
		panic(mismatch(op, t, b.typ))
	}
	if err := b.ready(op); err != nil {
		panic(err)
	}
	return b.slot.(*V)
}

func (b *Box) ready(op string) *Error {
	switch b.state {
	case empty:
		return &Error{Op: op, Err: ErrEmpty, Have: b.TypeName()}
	case moved:
		return &Error{Op: op, Err: ErrMoved, Have: b.TypeName()}
	}
	return nil
}

// Any returns a copy of the occupant as an interface value. It panics
// under the same conditions as Borrow.
func (b *Box) Any() any {
	if err := b.ready("any"); err != nil {
		panic(err)
	}
	return reflect.ValueOf(b.slot).Elem().Interface()
}

// Drop releases the occupant, closing it if it is an io.Closer. The box
// keeps its type and can be refilled with Replace.
func (b *Box) Drop() {
	if b.state != full {
		b.state = empty
		return
	}
	rv := reflect.ValueOf(b.slot).Elem()
	b.slot = nil
	b.state = empty
	if isNil(rv) {
		return
	}
	if c, ok := rv.Interface().(io.Closer); ok {
		if err := c.Close(); err != nil && debug.Box() {
			debug.Logf("anybox: closing %s: %v\n", b.typ, err)
		}
	}
}

// IsEmpty reports whether b holds nothing and has not been moved out of.
func (b *Box) IsEmpty() bool {
	return b.state == empty
}

// IsMoved reports whether the occupant was moved out by Take.
func (b *Box) IsMoved() bool {
	return b.state == moved
}

// TypeName returns the name of the type b holds, or "" for an untyped box.
func (b *Box) TypeName() string {
	if b.typ == nil {
		return ""
	}
	return b.typ.String()
}

func (b *Box) String() string {
	return "Box(" + b.TypeName() + ")"
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
