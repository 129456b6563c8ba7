// Package token provides the lexical layer of the tagged-text format:
// byte positions for error reporting, tag scanning over a bounded window of
// a document, and the canonical text of scalar payloads.
//
// All scanners work on byte offsets into the whole document and take an
// explicit end so that a container's body can be scanned without copying.
//
// # Related Packages
//
//   - github.com/signadot/tagtext/parse - Parse tagged text to IR
//   - github.com/signadot/tagtext/encode - Encode IR to tagged text
package token
