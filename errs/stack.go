package errs

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 32

// Frame is a program counter inside a stack frame.
type Frame uintptr

func (f Frame) pc() uintptr { return uintptr(f) - 1 }

func (f Frame) file() string {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return "unknown"
	}
	file, _ := fn.FileLine(f.pc())
	return file
}

func (f Frame) line() int {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return 0
	}
	_, line := fn.FileLine(f.pc())
	return line
}

func (f Frame) name() string {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

// Format formats the frame according to the fmt.Formatter interface.
//
//	%s    source file
//	%d    source line
//	%n    function name
//	%v    equivalent to %s:%d
//	%+v   function name and full path of source file, separated by "\n\t"
func (f Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			io.WriteString(s, f.name())
			io.WriteString(s, "\n\t")
			io.WriteString(s, f.file())
		} else {
			io.WriteString(s, path.Base(f.file()))
		}
	case 'd':
		io.WriteString(s, strconv.Itoa(f.line()))
	case 'n':
		io.WriteString(s, funcname(f.name()))
	case 'v':
		f.Format(s, 's')
		io.WriteString(s, ":")
		f.Format(s, 'd')
	}
}

// StackTrace is stack of Frames from innermost (newest) to outermost (oldest).
type StackTrace []Frame

func (st StackTrace) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for _, f := range st {
				io.WriteString(s, "\n")
				f.Format(s, verb)
			}
			return
		}
		fmt.Fprintf(s, "%v", []Frame(st))
	case 's':
		fmt.Fprintf(s, "%s", []Frame(st))
	}
}

func callers(skip int) *StackTrace {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	st := make(StackTrace, n)
	for i := 0; i < n; i++ {
		st[i] = Frame(pcs[i])
	}
	return &st
}

// foldAt returns how many frames of st are not shared with the stack of the
// nearest stack-carrying error inside cause.
func foldAt(st StackTrace, cause error) int {
	var inner StackTrace
	for cause != nil {
		if t, ok := cause.(stackTracer); ok {
			inner = t.StackTrace()
			break
		}
		u, ok := cause.(wrappedErr)
		if !ok {
			break
		}
		cause = u.Unwrap()
	}
	if len(inner) == 0 {
		return len(st)
	}

	i, j := len(st)-1, len(inner)-1
	for i > 0 && j >= 0 && st[i] == inner[j] {
		i--
		j--
	}
	return i + 1
}

func funcname(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}
