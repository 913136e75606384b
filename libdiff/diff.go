package libdiff

import (
	"strconv"

	"github.com/signadot/valuefmt/debug"
	"github.com/signadot/valuefmt/tree"
	"github.com/signadot/valuefmt/value"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to. Equal values give no
// changes.
func Diff(from, to *value.Value) []Change {
	var res []Change
	diff("", orNull(from), orNull(to), &res)
	return res
}

func orNull(v *value.Value) *value.Value {
	if v == nil {
		return value.Null()
	}
	return v
}

func diff(ptr string, from, to *value.Value, res *[]Change) {
	switch {
	case from.Type != to.Type:
		*res = append(*res, MakeChange(ptr, from, to))
	case from.Type == value.ObjectType:
		diffObject(ptr, from, to, res)
	case from.Type == value.ArrayType:
		diffArray(ptr, from, to, res)
	case !from.Equal(to):
		*res = append(*res, MakeChange(ptr, from, to))
	}
}

// 1 diff field names
// for every different field name add a change
// for every same field name, recurse on the value
func diffObject(ptr string, from, to *value.Value, res *[]Change) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				*res = append(*res, MakeChange(ptr+tree.Join(runeMap[r]), from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				diff(ptr+tree.Join(runeMap[r]), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				*res = append(*res, MakeChange(ptr+tree.Join(runeMap[r]), nil, to.Values[ti]))
				ti++
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, im map[rune]string, v *value.Value) []rune {
	rs := make([]rune, len(v.Fields))
	for i, f := range v.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

// Elements are summarized as their debug text when they are leaves and
// as their type when they are containers, so containers of the same
// shape line up and are compared element by element. A deletion
// directly followed by an insertion becomes a replacement.
func diffArray(ptr string, from, to *value.Value, res *[]Change) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	index := func(i int) string {
		return ptr + tree.Join(strconv.Itoa(i))
	}
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
			}
			paired := min(n, ins)
			for j := 0; j < paired; j++ {
				diff(index(ti), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
			for j := paired; j < n; j++ {
				*res = append(*res, MakeChange(index(fi), from.Values[fi], nil))
				fi++
			}
			if paired > 0 {
				diffs[i+1].Text = string([]rune(diffs[i+1].Text)[paired:])
			}
		case diffpatch.DiffEqual:
			for j := 0; j < n; j++ {
				diff(index(ti), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for j := 0; j < n; j++ {
				*res = append(*res, MakeChange(index(ti), nil, to.Values[ti]))
				ti++
			}
		}
	}
	if debug.Diff() {
		debug.Logf("diff array %q: %d from, %d to\n", ptr, len(from.Values), len(to.Values))
	}
}

func mapValues(m map[string]rune, v *value.Value) []rune {
	rs := make([]rune, len(v.Values))
	for i, x := range v.Values {
		key := x.Type.String()
		if x.Type.IsLeaf() {
			key = x.String()
		}
		r, ok := m[key]
		if !ok {
			r = rune(len(m))
			m[key] = r
		}
		rs[i] = r
	}
	return rs
}
