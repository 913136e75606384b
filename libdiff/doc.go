// Package libdiff computes differences between values.
//
// # Usage
//
//	// Structural changes between two values
//	changes := libdiff.Diff(oldValue, newValue)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
//	// Line diff of two rendered documents
//	fmt.Print(libdiff.Lines(oldText, newText))
//
// Object fields and array elements are aligned with the diff algorithm
// of github.com/sergi/go-diff, applied to sequences of field names or
// element summaries instead of characters.
package libdiff
