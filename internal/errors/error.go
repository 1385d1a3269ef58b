package errors

import "errors"

var (
	ErrOutOfRange  = errors.New("index out of range")
	ErrIllegalMove = errors.New("illegal move")
)
