package rands

import (
	"fmt"

	"github.com/donkeywon/randrange/errs"
)

// InvalidRangeError is returned for a range that cannot be drawn from.
// It matches errs.ErrInvalidRange with errors.Is.
type InvalidRangeError struct {
	Low  any
	High any
	// Err is the underlying reason when it is not low > high, e.g. errs.ErrNonFiniteBound.
	Err error
}

func newInvalidRange[T Number](low, high T) *InvalidRangeError {
	return &InvalidRangeError{Low: low, High: high}
}

func newNonFiniteRange[T Number](low, high T) *InvalidRangeError {
	return &InvalidRangeError{Low: low, High: high, Err: errs.ErrNonFiniteBound}
}

func (e *InvalidRangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%v, %v]: %s", errs.ErrInvalidRange, e.Low, e.High, e.Err)
	}
	return fmt.Sprintf("%s: low(%v) is higher than high(%v)", errs.ErrInvalidRange, e.Low, e.High)
}

func (e *InvalidRangeError) Unwrap() error { return e.Err }

func (e *InvalidRangeError) Is(target error) bool { return target == errs.ErrInvalidRange }

func (e *InvalidRangeError) Code() errs.Code { return errs.CodeInvalidRange }
