package collections

import "errors"

var (
	ErrElementExists  = errors.New("element existed")
	ErrMissingElement = errors.New("element not existed")
	ErrTypeMismatch   = errors.New("type mismatch")
)
