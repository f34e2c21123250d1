package errs

type Code int

const (
	CodeUnknown Code = iota
	CodeInvalidRange
	CodeInvalidRequest
)

func (c Code) String() string {
	switch c {
	case CodeInvalidRange:
		return "InvalidRange"
	case CodeInvalidRequest:
		return "InvalidRequest"
	default:
		return "Unknown"
	}
}

type Error interface {
	error
	Code() Code
}

// CodeOf returns the Code of the first Error in err's chain, CodeUnknown if there is none.
func CodeOf(err error) Code {
	for err != nil {
		if e, ok := err.(Error); ok {
			return e.Code()
		}
		u, ok := err.(wrappedErr)
		if !ok {
			return CodeUnknown
		}
		err = u.Unwrap()
	}
	return CodeUnknown
}

type withCode struct {
	error
	code Code
}

func (w *withCode) Unwrap() error { return w.error }
func (w *withCode) Code() Code    { return w.code }

// WithCode attaches code to err. Returns nil if err is nil.
func WithCode(err error, code Code) error {
	if err == nil {
		return nil
	}
	return &withCode{error: err, code: code}
}
