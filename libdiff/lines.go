package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line oriented diff of from and to. Every line of both
// texts appears once, prefixed with "-" when only in from, "+" when only
// in to and a space when in both.
func Lines(from, to string) string {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	buf := &strings.Builder{}
	for i := range diffs {
		d := &diffs[i]
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			buf.WriteString(prefix)
			buf.WriteString(ln)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// Changed reports whether a diff produced by [Lines] has any insertion
// or deletion.
func Changed(diff string) bool {
	for _, ln := range strings.Split(diff, "\n") {
		if strings.HasPrefix(ln, "-") || strings.HasPrefix(ln, "+") {
			return true
		}
	}
	return false
}
