package mergeop

import (
	"errors"
	"fmt"
)

var (
	ErrPatch     = errors.New("patch error")
	ErrUnknownOp = fmt.Errorf("%w: unknown op", ErrPatch)
	ErrOpArg     = fmt.Errorf("%w: bad op argument", ErrPatch)
)
