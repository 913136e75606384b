package anybox

import (
	"errors"
	"strings"
	"testing"
)

func expectPanic(t *testing.T, target error, f func()) *Error {
	t.Helper()
	var got *Error
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected panic")
			}
			e, ok := r.(*Error)
			if !ok {
				t.Fatalf("panic value %T, want *Error", r)
			}
			got = e
		}()
		f()
	}()
	if !errors.Is(got, target) {
		t.Errorf("got %v, want %v", got, target)
	}
	return got
}

func TestTakeOnce(t *testing.T) {
	b := New(int32(7))
	if got := Take[int32](b); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
	if !b.IsMoved() {
		t.Errorf("box not marked moved")
	}
	expectPanic(t, ErrMoved, func() { Take[int32](b) })
	expectPanic(t, ErrMoved, func() { Borrow[int32](b) })
}

func TestBorrowMutates(t *testing.T) {
	b := New([]string{"a"})
	p := Borrow[[]string](b)
	*p = append(*p, "b")
	got := Take[[]string](b)
	if strings.Join(got, ",") != "a,b" {
		t.Errorf("got %q, want %q", got, []string{"a", "b"})
	}
}

func TestMismatch(t *testing.T) {
	b := New("x")
	e := expectPanic(t, ErrTypeMismatch, func() { Borrow[int](b) })
	msg := e.Error()
	if !strings.Contains(msg, "int") || !strings.Contains(msg, "string") {
		t.Errorf("message %q does not name both types", msg)
	}
	expectPanic(t, ErrTypeMismatch, func() { Replace(b, 3) })
	expectPanic(t, ErrTypeMismatch, func() { Take[uint8](b) })
}

func TestEmpty(t *testing.T) {
	b := Empty[float64]()
	if !b.IsEmpty() {
		t.Errorf("new box not empty")
	}
	if got := b.TypeName(); got != "float64" {
		t.Errorf("got %q, want %q", got, "float64")
	}
	expectPanic(t, ErrEmpty, func() { Borrow[float64](b) })
	expectPanic(t, ErrEmpty, func() { b.Any() })

	var z Box
	if got := z.TypeName(); got != "" {
		t.Errorf("got %q, want empty type name", got)
	}
	Replace(&z, true)
	if got := Take[bool](&z); !got {
		t.Errorf("got false, want true")
	}
}

func TestReplaceAfterTake(t *testing.T) {
	b := New(1)
	Take[int](b)
	Replace(b, 2)
	if b.IsMoved() || b.IsEmpty() {
		t.Errorf("box not full after replace")
	}
	if got := *Borrow[int](b); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := b.Any(); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestTakeForce(t *testing.T) {
	b := New("keep")
	for range 3 {
		if got := TakeForce[string](b); got != "keep" {
			t.Errorf("got %q, want %q", got, "keep")
		}
	}
	if b.IsMoved() {
		t.Errorf("TakeForce moved the occupant")
	}
	e := expectPanic(t, ErrTypeMismatch, func() { TakeForce[int](b) })
	if e.Op != "take_force" {
		t.Errorf("got op %q, want take_force", e.Op)
	}
}

type closer struct {
	closed *int
}

func (c *closer) Close() error {
	*c.closed++
	return nil
}

func TestDropCloses(t *testing.T) {
	n := 0
	b := New(&closer{closed: &n})
	Replace(b, &closer{closed: &n})
	if n != 1 {
		t.Errorf("replace closed %d occupants, want 1", n)
	}
	b.Drop()
	if n != 2 {
		t.Errorf("drop closed %d occupants, want 2", n)
	}
	if !b.IsEmpty() {
		t.Errorf("box not empty after drop")
	}
	b.Drop()
	if n != 2 {
		t.Errorf("second drop closed again")
	}

	Replace(b, (*closer)(nil))
	b.Drop()

	moved := New(&closer{closed: &n})
	Take[*closer](moved)
	moved.Drop()
	if n != 2 {
		t.Errorf("drop closed a moved occupant")
	}
}
