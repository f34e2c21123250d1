package errs

import (
	"fmt"
	"io"
	"strings"

	"github.com/donkeywon/randrange/util/bufferpool"
)

const (
	multiErrPrefix = "multi error occurred:"
	multiErrBullet = "- "
	causePrefix    = "cause: "
)

var indentUnit = []byte("  ")

type wrappedErr interface {
	Unwrap() error
}

type wrappedErrs interface {
	Unwrap() []error
}

// multierror style
type errorLister interface {
	WrappedErrors() []error
}

type stackTracer interface {
	StackTrace() StackTrace
}

// plusState makes fmt.Formatter implementations print their "%+v" form into a buffer.
type plusState struct{ *bufferpool.Buffer }

var _ fmt.State = plusState{}

func (plusState) Flag(c int) bool                { return c == '+' }
func (plusState) Width() (wid int, ok bool)      { return 0, false }
func (plusState) Precision() (prec int, ok bool) { return 0, false }

// stackPrinter renders an error chain innermost first, one cause per line, indenting
// the members of joined errors by depth.
type stackPrinter struct {
	buf   *bufferpool.Buffer
	depth int
}

func (p stackPrinter) indented(s string, skipFirst bool) {
	writeIndented(p.buf, p.depth, skipFirst, s)
}

func (p stackPrinter) newline() {
	if p.buf.Len() > 0 {
		p.buf.WriteByte('\n')
	}
}

func (p stackPrinter) print(err error) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case wrappedErrs:
		p.printJoined(e.Unwrap())
	case errorLister:
		p.printJoined(e.WrappedErrors())
	case wrappedErr:
		p.printWrapped(err, e.Unwrap())
	case fmt.Formatter:
		p.newline()
		sub := bufferpool.GetBuffer()
		e.Format(plusState{sub}, 'v')
		p.indented(strings.TrimLeft(sub.String(), " \n"), false)
		sub.Free()
	default:
		p.newline()
		p.buf.WriteString(err.Error())
	}
}

func (p stackPrinter) printJoined(list []error) {
	switch len(list) {
	case 0:
		return
	case 1:
		p.print(list[0])
		return
	}

	p.indented(multiErrPrefix, false)
	for _, e := range list {
		p.buf.WriteByte('\n')
		writeIndented(p.buf, p.depth+1, false, multiErrBullet)

		sub := bufferpool.GetBuffer()
		stackPrinter{buf: sub, depth: p.depth + 2}.print(e)
		writeIndented(p.buf, 0, true, strings.TrimLeft(sub.String(), " \n"))
		sub.Free()
	}
}

func (p stackPrinter) printWrapped(err, inner error) {
	if inner == nil {
		p.newline()
		p.buf.WriteString(err.Error())
		return
	}
	p.print(inner)

	switch e := err.(type) {
	case *withCode:
	case *withMessage:
		p.buf.WriteByte('\n')
		p.indented(causePrefix, false)
		p.buf.WriteString(e.msg)
	case *withStack:
		p.printFrames(e)
	default:
		p.buf.WriteByte('\n')
		p.indented(causePrefix, false)
		p.buf.WriteString(err.Error())
	}
}

// printFrames prints only the frames not already shown by the wrapped error.
func (p stackPrinter) printFrames(e *withStack) {
	total := len(*e.stack)
	own := (*e.stack)[:e.foldAt]

	sub := bufferpool.GetBuffer()
	own.Format(plusState{sub}, 'v')
	p.indented(sub.String(), false)
	sub.Free()

	if e.foldAt < total {
		p.buf.WriteByte('\n')
		p.indented(fmt.Sprintf("\t... %d more", total-e.foldAt), false)
	}
}

func writeIndented(w io.Writer, depth int, skipFirst bool, s string) {
	for first := true; len(s) > 0; first = false {
		if !first || !skipFirst {
			for range depth {
				w.Write(indentUnit)
			}
		}

		n := strings.IndexByte(s, '\n') + 1
		if n == 0 {
			n = len(s)
		}
		io.WriteString(w, s[:n])
		s = s[n:]
	}
}

// ErrToStack writes err, its causes and their stack frames into buf.
func ErrToStack(err error, buf *bufferpool.Buffer, depth int) {
	stackPrinter{buf: buf, depth: depth}.print(err)
}

func ErrToStackString(err error) string {
	buf := bufferpool.GetBuffer()
	defer buf.Free()
	ErrToStack(err, buf, 0)
	return buf.String()
}

// PanicToErr turns a recovered value into an error, errors are kept as is.
func PanicToErr(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return Errorf("panic: %+v", p)
}
