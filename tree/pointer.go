package tree

import (
	"strings"

	"github.com/signadot/valuefmt/debug"
)

// Get resolves pointer against root. The empty pointer addresses root
// itself. A malformed pointer, a missing key, a bad or out of range
// index, or a step into a scalar all yield false.
func Get[N any](v View[N], root N, pointer string) (N, bool) {
	var zero N
	toks, ok := Tokens(pointer)
	if !ok {
		return zero, false
	}
	cur := root
	for _, tok := range toks {
		switch v.Kind(cur) {
		case Object:
			next, ok := v.Field(cur, tok)
			if !ok {
				return zero, miss(pointer, tok)
			}
			cur = next
		case Array:
			i, ok := ParseIndex(tok)
			if !ok || i >= v.Len(cur) {
				return zero, miss(pointer, tok)
			}
			cur = v.Index(cur, i)
		default:
			return zero, miss(pointer, tok)
		}
	}
	return cur, true
}

func miss(pointer, tok string) bool {
	if debug.Pointer() {
		debug.Logf("pointer %q: no match at %q\n", pointer, tok)
	}
	return false
}

// Tokens splits pointer into its unescaped reference tokens.
func Tokens(pointer string) ([]string, bool) {
	if pointer == "" {
		return nil, true
	}
	if pointer[0] != '/' {
		return nil, false
	}
	toks := strings.Split(pointer[1:], "/")
	for i, tok := range toks {
		toks[i] = Unescape(tok)
	}
	return toks, true
}

// ParseIndex parses an array index token. Only unsigned decimal digits
// without leading zeros are accepted, except for "0" itself.
func ParseIndex(tok string) (int, bool) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, false
	}
	n := 0
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if n > (maxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

const maxInt = int(^uint(0) >> 1)

// Unescape decodes "~1" then "~0", so "~01" becomes "~1".
func Unescape(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}

func Escape(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

// Join builds a pointer from unescaped tokens.
func Join(toks ...string) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteByte('/')
		b.WriteString(Escape(tok))
	}
	return b.String()
}
