package ir

import "errors"

var (
	ErrInvalidKey = errors.New("invalid dict key")
	ErrPath       = errors.New("path error")
)
