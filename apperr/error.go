package apperr

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/valuefmt/anybox"
)

// Error is a failure of a given Kind with an optional detail message,
// cause and context values.
//
// The With* methods return modified copies; an *Error is never mutated
// after it is raised.
type Error struct {
	Kind   *Kind
	Detail string

	cause error
	ctx   *anybox.Box // map[string]any
}

// Raise returns a new error of kind k.
func Raise(k *Kind, detail string) *Error {
	return &Error{Kind: k, Detail: detail}
}

// Errorf is Raise with a formatted detail.
func Errorf(k *Kind, format string, args ...any) *Error {
	return Raise(k, fmt.Sprintf(format, args...))
}

func (e *Error) WithCause(err error) *Error {
	c := *e
	c.cause = err
	return &c
}

func (e *Error) WithContext(key string, v any) *Error {
	c := *e
	m := maps.Clone(e.Context())
	if m == nil {
		m = map[string]any{}
	}
	m[key] = v
	c.ctx = anybox.New(m)
	return &c
}

func (e *Error) Cause() error {
	return e.cause
}

// Context returns the context values attached with WithContext. The
// returned map must not be modified.
func (e *Error) Context() map[string]any {
	if e.ctx == nil {
		return nil
	}
	return *anybox.Borrow[map[string]any](e.ctx)
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Name)
	b.WriteString(": ")
	b.WriteString(e.Kind.Msg)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.cause}
}

func (e *Error) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"name": e.Kind.Name,
		"code": e.Kind.Code,
		"msg":  e.Kind.Msg,
	}
	if e.Detail != "" {
		m["msg_detail"] = e.Detail
	}
	if e.cause != nil {
		m["cause"] = e.cause.Error()
	}
	ctx := e.Context()
	for _, k := range slices.Sorted(maps.Keys(ctx)) {
		if _, ok := m[k]; ok {
			continue
		}
		m[k] = ctx[k]
	}
	return json.Marshal(m)
}
