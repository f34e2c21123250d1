package errs

import (
	"errors"
)

var (
	ErrInvalidRange   = errors.New("invalid range")
	ErrNonFiniteBound = errors.New("bound is NaN or infinite")
)
