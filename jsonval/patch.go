package jsonval

import (
	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/debug"
	"github.com/signadot/valuefmt/value"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch document to v. Integer widths
// and calendar types of v are not preserved.
func Patch(v *value.Value, patch []byte) (*value.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, apperr.Raise(apperr.ErrParse, "json patch").WithCause(err)
	}
	doc, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	if debug.Merge() {
		debug.Logf("json patch %d ops on %s\n", len(ops), v)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, apperr.Raise(apperr.ErrData, "json patch").WithCause(err)
	}
	return Unmarshal(out)
}

// MergePatch applies an RFC 7386 merge patch to v. Unlike Merge, null
// members of the patch delete keys and arrays are replaced.
func MergePatch(v *value.Value, patch []byte) (*value.Value, error) {
	doc, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, apperr.Raise(apperr.ErrData, "json merge patch").WithCause(err)
	}
	return Unmarshal(out)
}

// Diff returns the RFC 7386 merge patch turning a into b.
func Diff(a, b *value.Value) ([]byte, error) {
	da, err := Marshal(a)
	if err != nil {
		return nil, err
	}
	db, err := Marshal(b)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.CreateMergePatch(da, db)
	if err != nil {
		return nil, apperr.Raise(apperr.ErrData, "json merge patch").WithCause(err)
	}
	return p, nil
}
