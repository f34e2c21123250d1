package log

import (
	"go.uber.org/zap"
)

type Logger interface {
	Debug(msg string, kvs ...any)
	Info(msg string, kvs ...any)
	Warn(msg string, kvs ...any)
	Error(msg string, err error, kvs ...any)
}

type zapLogger struct {
	l *zap.Logger
}

// New adapts l to Logger. kvs are alternating keys and values, zap.Field is accepted as is.
// l is expected to be built by Cfg.Build, which already skips this wrapper's frame.
func New(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zapLogger{l: zap.NewNop()}
}

func (z *zapLogger) Debug(msg string, kvs ...any) {
	if ce := z.l.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(HandleZapFields(kvs)...)
	}
}

func (z *zapLogger) Info(msg string, kvs ...any) {
	if ce := z.l.Check(zap.InfoLevel, msg); ce != nil {
		ce.Write(HandleZapFields(kvs)...)
	}
}

func (z *zapLogger) Warn(msg string, kvs ...any) {
	if ce := z.l.Check(zap.WarnLevel, msg); ce != nil {
		ce.Write(HandleZapFields(kvs)...)
	}
}

func (z *zapLogger) Error(msg string, err error, kvs ...any) {
	if ce := z.l.Check(zap.ErrorLevel, msg); ce != nil {
		ce.Write(HandleZapFields(kvs, zap.Error(err))...)
	}
}
