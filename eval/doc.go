// Package eval runs expr-lang expressions against tagged-text documents.
//
// The document is bound to the variable doc, with dicts as maps and lists
// as slices.  The functions getpath, listpath, getenv and tagtext are
// available to every expression.
package eval
