package core

import (
	"slices"

	"github.com/donkeywon/randrange/errs"
	"github.com/donkeywon/randrange/util/bufferpool"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	codeField   = "code"
	stackPrefix = "error: "
)

// NewErrStackCore renders the first error field with errs.ErrToStack into the entry's stack
// and replaces the field by the error's errs.Code, if it carries one.
func NewErrStackCore(c zapcore.Core) zapcore.Core {
	return errStackCore{c}
}

type errStackCore struct {
	zapcore.Core
}

func (c errStackCore) With(fields []zapcore.Field) zapcore.Core {
	return errStackCore{c.Core.With(fields)}
}

func (c errStackCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	return ce.AddCore(ent, c)
}

func (c errStackCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	i := slices.IndexFunc(fields, func(f zapcore.Field) bool { return f.Type == zapcore.ErrorType })
	if i < 0 {
		return c.Core.Write(ent, fields)
	}

	err, _ := fields[i].Interface.(error)
	fields = slices.Delete(slices.Clone(fields), i, i+1)
	if code := errs.CodeOf(err); code != errs.CodeUnknown {
		fields = append(fields, zap.Stringer(codeField, code))
	}

	buf := bufferpool.GetBuffer()
	defer buf.Free()
	errs.ErrToStack(err, buf, 0)
	if ent.Stack != "" {
		ent.Stack += "\n"
	}
	ent.Stack += stackPrefix + buf.String()
	return c.Core.Write(ent, fields)
}
