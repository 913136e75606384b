// Package template renders text templates over values.
//
// A [Registry] holds named text/template templates which may call each
// other with {{template "name" .}}. Besides the standard functions every
// template can use:
//
//	place X [NAME]  bind X and write its placeholder ($1, $2, ... or NAME)
//	ptr "/a/0"      the value at an RFC 6901 pointer into the render data
//	expr "a + 1"    evaluate an expr-lang expression over the render data
//
// The values bound by place are returned from [Registry.Render] as
// [Bindings], so a template can build a parameterized query:
//
//	select * from t where name = {{place .name}}
package template

import (
	"bytes"
	"sync"
	texttemplate "text/template"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/debug"
	"github.com/signadot/valuefmt/valctx"
	"github.com/signadot/valuefmt/value"

	"github.com/expr-lang/expr/vm"
)

// Registry is safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	root   *texttemplate.Template
	funcs  texttemplate.FuncMap
	left   string
	right  string
	opts   []string
	closed bool

	progMu   sync.Mutex
	programs map[string]*vm.Program
}

type Option func(*Registry)

func Delims(left, right string) Option {
	return func(r *Registry) {
		r.left, r.right = left, right
	}
}

// Funcs adds functions available to every template.
func Funcs(fm texttemplate.FuncMap) Option {
	return func(r *Registry) {
		for k, f := range fm {
			r.funcs[k] = f
		}
	}
}

// MissingKeyError makes a missing map key an execution error.
func MissingKeyError() Option {
	return func(r *Registry) {
		r.opts = append(r.opts, "missingkey=error")
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		funcs:    texttemplate.FuncMap{},
		programs: map[string]*vm.Program{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.root = texttemplate.New("").Delims(r.left, r.right).Option(r.opts...)
	r.root.Funcs(r.helpers(nil, nil))
	return r
}

var errClosed = apperr.Raise(apperr.ErrArgument, "template registry is closed")

// Register parses text as the template name, replacing any template
// of that name.
func (r *Registry) Register(name, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errClosed
	}
	if _, err := r.root.New(name).Parse(text); err != nil {
		return apperr.Errorf(apperr.ErrParse, "template %q", name).WithCause(err)
	}
	if debug.Template() {
		debug.Logf("template: registered %q\n", name)
	}
	return nil
}

func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed && r.root.Lookup(name) != nil
}

// Render executes the template name with data as its dot.
func (r *Registry) Render(name string, data *value.Value) (string, *Bindings, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return "", nil, errClosed
	}
	if r.root.Lookup(name) == nil {
		r.mu.Unlock()
		return "", nil, apperr.Errorf(apperr.ErrArgument, "template %q is not defined", name)
	}
	t, err := r.root.Clone()
	r.mu.Unlock()
	if err != nil {
		return "", nil, apperr.Raise(apperr.ErrInternal, "clone templates").WithCause(err)
	}
	return r.execute(t, name, data)
}

// RenderText parses and executes text once without registering it. It
// may call registered templates.
func (r *Registry) RenderText(text string, data *value.Value) (string, *Bindings, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return "", nil, errClosed
	}
	t, err := r.root.Clone()
	r.mu.Unlock()
	if err != nil {
		return "", nil, apperr.Raise(apperr.ErrInternal, "clone templates").WithCause(err)
	}
	const name = "$text"
	if _, err := t.New(name).Parse(text); err != nil {
		return "", nil, apperr.Raise(apperr.ErrParse, "template text").WithCause(err)
	}
	return r.execute(t, name, data)
}

// RenderContext renders name with the values of c as its data.
func (r *Registry) RenderContext(name string, c *valctx.Context) (string, *Bindings, error) {
	return r.Render(name, c.Value())
}

func (r *Registry) execute(t *texttemplate.Template, name string, data *value.Value) (string, *Bindings, error) {
	if data == nil {
		data = value.Null()
	}
	b := newBindings()
	t.Funcs(r.helpers(b, data))
	buf := &bytes.Buffer{}
	if err := t.ExecuteTemplate(buf, name, data.Interface()); err != nil {
		return "", nil, apperr.Errorf(apperr.ErrFormat, "render template %q", name).WithCause(err)
	}
	if debug.Template() {
		debug.Logf("template: rendered %q with %d bindings\n", name, b.Len())
	}
	return buf.String(), b, nil
}

// Close drops every template and compiled expression. Later calls fail.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	r.root = texttemplate.New("")
	r.mu.Unlock()
	r.progMu.Lock()
	clear(r.programs)
	r.progMu.Unlock()
}
