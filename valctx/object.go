package valctx

import (
	"github.com/signadot/valuefmt/anybox"
)

// SetObject boxes v under key, dropping any object already there.
func SetObject[T any](c *Context, key string, v T) {
	if b, ok := c.objects[key]; ok {
		b.Drop()
	}
	c.objects[key] = anybox.New(v)
}

// Object returns a pointer to the object stored under key. Writes
// through the pointer modify the stored object.
func Object[T any](c *Context, key string) (*T, error) {
	b, ok := c.objects[key]
	if !ok {
		return nil, missing(key)
	}
	return anybox.Borrow[T](b), nil
}

func OptObject[T any](c *Context, key string) (*T, bool) {
	b, ok := c.objects[key]
	if !ok {
		return nil, false
	}
	return anybox.Borrow[T](b), true
}

// TakeObject moves the object stored under key out of c.
func TakeObject[T any](c *Context, key string) (T, error) {
	b, ok := c.objects[key]
	if !ok {
		var zero T
		return zero, missing(key)
	}
	res := anybox.Take[T](b)
	delete(c.objects, key)
	return res, nil
}

func (c *Context) HasObject(key string) bool {
	_, ok := c.objects[key]
	return ok
}
