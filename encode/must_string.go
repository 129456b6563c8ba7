package encode

import (
	"github.com/signadot/tagtext/ir"
)

// MustString encodes node without options.  It panics only if node holds a
// type outside the closed set of value types.
func MustString(node *ir.Node) string {
	s, err := EncodeString(node)
	if err != nil {
		panic(err)
	}
	return s
}
