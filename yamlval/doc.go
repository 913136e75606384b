// Package yamlval converts between Values and YAML node trees
// (*yaml.Node from gopkg.in/yaml.v3).
//
// Document nodes are unwrapped and aliases are followed. Scalars are
// classified by their resolved tag: !!null, !!bool, !!int, !!float and
// !!str convert to the matching Value, and !!timestamp scalars are kept
// as strings. !!binary and custom tags have no Value counterpart and fail
// with value.ErrUnsupportedConversion. Mapping keys must be scalars;
// merge keys (<<) are applied with explicit keys taking precedence.
package yamlval
