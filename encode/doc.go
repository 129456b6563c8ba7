// Package encode encodes IR nodes to tagged text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode to a string
//	s, err := encode.EncodeString(node, encode.StrictKeys(true))
//
//	// Encoding without options cannot fail for well formed trees
//	s := encode.MustString(node)
//
// The output has no whitespace or newlines of its own: a document is
// exactly one value.
//
// # Related Packages
//
//   - github.com/signadot/tagtext/ir - IR representation
//   - github.com/signadot/tagtext/parse - Parse tagged text to IR
package encode
