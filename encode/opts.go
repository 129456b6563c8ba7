package encode

type EncodeOption func(*EncState)

// StrictKeys rejects dict keys that cannot be read back as tag names.
func StrictKeys(v bool) EncodeOption {
	return func(es *EncState) { es.strictKeys = v }
}

// StrictStrings rejects string payloads that the decoder would split or
// mis-nest, such as those containing "</str>".
func StrictStrings(v bool) EncodeOption {
	return func(es *EncState) { es.strictStrings = v }
}

// Strict is StrictKeys and StrictStrings together.
func Strict() EncodeOption {
	return func(es *EncState) {
		es.strictKeys = true
		es.strictStrings = true
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
