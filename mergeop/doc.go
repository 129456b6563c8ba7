// Package mergeop provides named patch operations on tagged-text documents.
//
// Each operation is a [Symbol] registered under a name.  A symbol is
// instantiated with a child node holding the operation's argument, such as
// the list of RFC 6902 operations for "json-patch", and the resulting [Op]
// patches documents:
//
//	sym := mergeop.Lookup("merge-patch")
//	op, err := sym.Instance(patchNode)
//	if err != nil {
//		return err
//	}
//	patched, err := op.Patch(doc)
//
// Built-in operations:
//
//   - json-patch: apply a JSON Patch (RFC 6902) given as a list of dicts
//   - merge-patch: apply a JSON Merge Patch (RFC 7386)
//   - strpatch: apply a diffmatchpatch patch text to a string
//   - eval: replace the document with the result of an expression
//
// json-patch and merge-patch go through JSON, so the patched document comes
// back with dict members sorted by key.
package mergeop
