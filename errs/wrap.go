package errs

import (
	"fmt"
	"io"
)

type withMessage struct {
	cause error
	msg   string
}

func (w *withMessage) Error() string { return w.msg + ": " + w.cause.Error() }
func (w *withMessage) Unwrap() error { return w.cause }

type withStack struct {
	error
	stack  *StackTrace
	foldAt int
}

func (w *withStack) Unwrap() error { return w.error }

func (w *withStack) StackTrace() StackTrace { return *w.stack }

func (w *withStack) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v", w.error)
			w.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, w.Error())
	case 'q':
		fmt.Fprintf(s, "%q", w.Error())
	}
}

func newWithStack(err error) *withStack {
	st := callers(4)
	return &withStack{
		error:  err,
		stack:  st,
		foldAt: foldAt(*st, err),
	}
}

// Errorf formats according to a format specifier, %w is supported.
func Errorf(format string, args ...any) error {
	return newWithStack(fmt.Errorf(format, args...))
}

// WithStack annotates err with the stack of the caller. Returns nil if err is nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return newWithStack(err)
}

// Wrap annotates err with msg and the stack of the caller. Returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return newWithStack(&withMessage{cause: err, msg: msg})
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newWithStack(&withMessage{cause: err, msg: fmt.Sprintf(format, args...)})
}
