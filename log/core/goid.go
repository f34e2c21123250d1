package core

import (
	"slices"

	"github.com/petermattis/goid"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const goroutineField = "goid"

// NewGoroutineCore tags every entry with the id of the goroutine that wrote it,
// so lines from concurrent draw workers can be told apart.
func NewGoroutineCore(c zapcore.Core) zapcore.Core {
	return goroutineCore{c}
}

type goroutineCore struct {
	zapcore.Core
}

func (c goroutineCore) With(fields []zapcore.Field) zapcore.Core {
	return goroutineCore{c.Core.With(fields)}
}

func (c goroutineCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}
	return ce.AddCore(ent, c)
}

func (c goroutineCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	tagged := slices.ContainsFunc(fields, func(f zapcore.Field) bool { return f.Key == goroutineField })
	if !tagged {
		fields = append(fields, zap.Int64(goroutineField, goid.Get()))
	}
	return c.Core.Write(ent, fields)
}
