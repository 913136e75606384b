package template

import (
	texttemplate "text/template"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// helpers returns the built in functions bound to one render. At parse
// time b and data are nil; only the names matter then.
func (r *Registry) helpers(b *Bindings, data *value.Value) texttemplate.FuncMap {
	fm := texttemplate.FuncMap{}
	for k, f := range r.funcs {
		fm[k] = f
	}
	fm["place"] = func(x any, name ...string) (string, error) {
		if len(name) > 1 {
			return "", apperr.Raise(apperr.ErrArgument, "place takes at most one name")
		}
		v, err := value.FromInterface(x)
		if err != nil {
			return "", err
		}
		n := ""
		if len(name) == 1 {
			n = name[0]
		}
		return b.bind(n, v)
	}
	fm["ptr"] = func(p string) (any, error) {
		v, ok := data.Pointer(p)
		if !ok {
			return nil, apperr.Errorf(apperr.ErrArgument, "no value at %q", p)
		}
		return v.Interface(), nil
	}
	fm["expr"] = func(src string) (any, error) {
		prg, err := r.program(src)
		if err != nil {
			return nil, err
		}
		res, err := expr.Run(prg, exprEnv(data))
		if err != nil {
			return nil, apperr.Errorf(apperr.ErrData, "expr %q", src).WithCause(err)
		}
		return res, nil
	}
	return fm
}

// exprEnv exposes the fields of an object as variables; any other data
// is available as _root.
func exprEnv(data *value.Value) map[string]any {
	if m, ok := data.Interface().(map[string]any); ok {
		return m
	}
	return map[string]any{"_root": data.Interface()}
}

func (r *Registry) program(src string) (*vm.Program, error) {
	r.progMu.Lock()
	defer r.progMu.Unlock()
	if prg, ok := r.programs[src]; ok {
		return prg, nil
	}
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, apperr.Errorf(apperr.ErrParse, "expr %q", src).WithCause(err)
	}
	r.programs[src] = prg
	return prg, nil
}
