package encoder

import (
	"github.com/donkeywon/randrange/util/bufferpool"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	ConsoleLite = "console-lite"

	liteTimeLayout = "0102 15:04:05.000000"
)

func init() {
	_ = zap.RegisterEncoder(ConsoleLite, NewConsoleLiteEncoder)
}

// NewConsoleLiteEncoder is a console encoder that folds level, time, logger name and caller
// into one leading column: "I1018 10:00:00.000000\tname(file.go:12)".
func NewConsoleLiteEncoder(cfg zapcore.EncoderConfig) (zapcore.Encoder, error) {
	sep := cfg.ConsoleSeparator
	if sep == "" {
		sep = "\t"
	}
	cfg.EncodeLevel = nil
	cfg.EncodeTime = nil
	cfg.EncodeCaller = nil
	cfg.EncodeName = zapcore.FullNameEncoder
	return consoleLite{Encoder: zapcore.NewConsoleEncoder(cfg), sep: sep}, nil
}

type consoleLite struct {
	zapcore.Encoder
	sep string
}

func (c consoleLite) Clone() zapcore.Encoder {
	return consoleLite{Encoder: c.Encoder.Clone(), sep: c.sep}
}

func (c consoleLite) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	ent.LoggerName = c.header(ent)
	return c.Encoder.EncodeEntry(ent, fields)
}

func (c consoleLite) header(ent zapcore.Entry) string {
	buf := bufferpool.GetBuffer()
	defer buf.Free()

	buf.WriteByte(ent.Level.CapitalString()[0])
	if !ent.Time.IsZero() {
		buf.Write(ent.Time.AppendFormat(buf.AvailableBuffer(), liteTimeLayout))
	}
	buf.WriteString(c.sep)
	buf.WriteString(ent.LoggerName)
	if !ent.Caller.Defined {
		return buf.String()
	}
	named := ent.LoggerName != ""
	if named {
		buf.WriteByte('(')
	}
	buf.WriteString(ent.Caller.TrimmedPath())
	if named {
		buf.WriteByte(')')
	}
	return buf.String()
}
