// Package valctx provides a string keyed context holding values and
// arbitrary boxed objects.
//
// Values and objects live in separate namespaces: a key set with
// [SetObject] is not visible to the value getters and vice versa.
// Getters without an Opt prefix require the key and fail with an
// [apperr.ErrArgument] error when it is missing. A present key holding
// the wrong variant fails with the [value.CastError] of its accessor.
// Objects are held in [anybox.Box]es, so asking for an object with the
// wrong type panics with an [*anybox.Error].
//
// A Context is not safe for concurrent use.
package valctx

import (
	"slices"

	"github.com/signadot/valuefmt/anybox"
	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/value"
)

type Context struct {
	values  map[string]*value.Value
	objects map[string]*anybox.Box
}

func New() *Context {
	return &Context{
		values:  map[string]*value.Value{},
		objects: map[string]*anybox.Box{},
	}
}

// FromValue returns a context holding copies of the fields of obj.
func FromValue(obj *value.Value) (*Context, error) {
	m, err := obj.AsObject()
	if err != nil {
		return nil, err
	}
	c := New()
	for k, v := range m {
		c.values[k] = v.Clone()
	}
	return c, nil
}

func missing(key string) error {
	return apperr.Errorf(apperr.ErrArgument, "%s is required", key).WithContext("key", key)
}

func (c *Context) Set(key string, v *value.Value) {
	if v == nil {
		v = value.Null()
	}
	c.values[key] = v
}

func (c *Context) Get(key string) (*value.Value, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *Context) Require(key string) (*value.Value, error) {
	v, ok := c.values[key]
	if !ok {
		return nil, missing(key)
	}
	return v, nil
}

func (c *Context) Delete(key string) {
	delete(c.values, key)
}

// Keys returns the value keys in sorted order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Value returns a copy of the values of c as an Object. Objects are not
// included.
func (c *Context) Value() *value.Value {
	return value.FromMap(c.values).Clone()
}

// Merge deep merges obj into the values of c, key by key.
func (c *Context) Merge(obj *value.Value) error {
	m, err := obj.AsObject()
	if err != nil {
		return err
	}
	for k, in := range m {
		base, ok := c.values[k]
		if !ok {
			c.values[k] = in.Clone()
			continue
		}
		if _, err := base.Merge(in); err != nil {
			return err
		}
	}
	return nil
}

// Close drops every boxed object, closing those that are io.Closers.
func (c *Context) Close() {
	for k, b := range c.objects {
		b.Drop()
		delete(c.objects, k)
	}
}

func get[T any](c *Context, key string, as func(*value.Value) (T, error)) (T, error) {
	v, err := c.Require(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return as(v)
}

func opt[T any](c *Context, key string, as func(*value.Value) (T, error)) (T, bool, error) {
	v, ok := c.values[key]
	if !ok {
		var zero T
		return zero, false, nil
	}
	res, err := as(v)
	return res, err == nil, err
}

func (c *Context) String(key string) (string, error) {
	return get(c, key, (*value.Value).AsStr)
}
func (c *Context) OptString(key string) (string, bool, error) {
	return opt(c, key, (*value.Value).AsStr)
}
func (c *Context) SetString(key, s string) {
	c.Set(key, value.FromString(s))
}

func (c *Context) Bool(key string) (bool, error) {
	return get(c, key, (*value.Value).AsBool)
}

// BoolOr returns def when key is absent.
func (c *Context) BoolOr(key string, def bool) (bool, error) {
	b, ok, err := opt(c, key, (*value.Value).AsBool)
	if !ok && err == nil {
		return def, nil
	}
	return b, err
}
func (c *Context) SetBool(key string, b bool) {
	c.Set(key, value.FromBool(b))
}

func (c *Context) I64(key string) (int64, error) {
	return get(c, key, (*value.Value).AsI64)
}
func (c *Context) OptI64(key string) (int64, bool, error) {
	return opt(c, key, (*value.Value).AsI64)
}
func (c *Context) SetI64(key string, i int64) {
	c.Set(key, value.FromI64(i))
}

func (c *Context) U64(key string) (uint64, error) {
	return get(c, key, (*value.Value).AsU64)
}
func (c *Context) OptU64(key string) (uint64, bool, error) {
	return opt(c, key, (*value.Value).AsU64)
}
func (c *Context) SetU64(key string, u uint64) {
	c.Set(key, value.FromU64(u))
}

func (c *Context) F64(key string) (float64, error) {
	return get(c, key, (*value.Value).AsF64)
}
func (c *Context) OptF64(key string) (float64, bool, error) {
	return opt(c, key, (*value.Value).AsF64)
}
func (c *Context) SetF64(key string, f float64) {
	c.Set(key, value.FromF64(f))
}
