package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/tagtext/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrMalformedInput  = fmt.Errorf("%w: malformed input", ErrParse)
	ErrUnknownTypeTag  = fmt.Errorf("%w: unknown type tag", ErrParse)
	ErrUnterminatedTag = fmt.Errorf("%w: unterminated tag", ErrParse)
	ErrInvalidBool     = fmt.Errorf("%w: invalid bool literal", ErrParse)
	ErrInvalidInt      = fmt.Errorf("%w: invalid int literal", ErrParse)
	ErrInvalidFloat    = fmt.Errorf("%w: invalid float literal", ErrParse)
	ErrInvalidNone     = fmt.Errorf("%w: invalid none literal", ErrParse)
	ErrTrailingData    = fmt.Errorf("%w: trailing data", ErrParse)
	ErrRecursionLimit  = fmt.Errorf("%w: recursion limit exceeded", ErrParse)
)

// Error is a decode failure at a byte offset of the input.
type Error struct {
	Err error
	Pos token.Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Offset returns the byte offset at which the failure was detected.
func (e *Error) Offset() int {
	return e.Pos.I
}

func (p *parser) errAt(kind error, off int, msg string, args ...any) error {
	err := kind
	if msg != "" {
		err = fmt.Errorf("%w: "+msg, append([]any{kind}, args...)...)
	}
	return &Error{Err: err, Pos: *p.doc.Pos(off)}
}
