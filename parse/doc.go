// Package parse decodes tagged text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`<list><int>1</int><str>x</str></list>`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`<dict><a><none>None</none></a></dict>`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.MaxDepth(64))
//
// Parse is a recursive descent over the document bytes with an explicit
// cursor.  Containers first locate their matching close tag by depth
// counting and then parse their body as a bounded window, so every error
// carries the byte offset of the failure.  Errors are [*Error] values that
// wrap one of the sentinel errors in this package:
//
//	if errors.Is(err, parse.ErrInvalidInt) { ... }
//
// # Related Packages
//
//   - github.com/signadot/tagtext/ir - IR representation
//   - github.com/signadot/tagtext/encode - Encode IR to tagged text
//   - github.com/signadot/tagtext/token - Tag scanning and literals
package parse
