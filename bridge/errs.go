package bridge

import "errors"

var (
	ErrUnsupported = errors.New("unsupported value")
	ErrRange       = errors.New("integer out of range")
	ErrNotJSON     = errors.New("not representable in JSON")
)
