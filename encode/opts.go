package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level in block output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
func EncodeBrackets(v bool) EncodeOption {
	return func(es *EncState) { es.brackets = v }
}

// EncodeTypes tags numbers whose variant is not the default one for their
// text (I32, U32, U64, F32) so the output shows the exact variant.
func EncodeTypes(v bool) EncodeOption {
	return func(es *EncState) { es.types = v }
}
