package bits

import "errors"

var (
	// ErrBufferExhausted indicates a read past the end of the buffer
	ErrBufferExhausted = errors.New("bit buffer exhausted")

	// ErrInvalidWidth indicates a field wider than MaxWidth bits
	ErrInvalidWidth = errors.New("invalid bit field width")
)
