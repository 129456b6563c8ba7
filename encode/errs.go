package encode

import (
	"errors"
	"fmt"

	"github.com/signadot/tagtext/ir"
)

var (
	ErrEncoding        = errors.New("encoding error")
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type", ErrEncoding)
	ErrAmbiguousString = fmt.Errorf("%w: string cannot be decoded back", ErrEncoding)
	ErrInvalidKey      = ir.ErrInvalidKey
)
