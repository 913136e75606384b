// Package tree implements deep merge and RFC 6901 pointer navigation
// once, over any tree shape that can describe itself through a View.
//
// Each format package (value, jsonval, yamlval, tomlval, binval)
// provides a View or Editor for its native node type and delegates to
// Get and Merge, so the algorithms behave identically everywhere.
package tree
