package encode

type EncodeOption func(*EncState)

// EncodeCanonical sorts a clone of the input before rendering, so equal
// trees always render identically.
func EncodeCanonical(v bool) EncodeOption {
	return func(es *EncState) { es.canonical = v }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
