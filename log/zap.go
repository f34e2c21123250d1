package log

import (
	"io"
	"time"

	"github.com/bytedance/sonic/encoder"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	JSONEncoding        = "json"
	ConsoleEncoding     = "console"
	ConsoleLiteEncoding = "console-lite"

	TimeEncoderLayout = "2006-01-02 15:04:05.000000"

	DefaultLevel             = zap.InfoLevel
	DefaultDisableStacktrace = true // stack core will extract error stack, so zap's stack is useless

	DefaultEncoding                = ConsoleEncoding
	DefaultEncoderMessageKey       = "msg"
	DefaultEncoderLevelKey         = "lvl"
	DefaultEncoderNameKey          = "logger"
	DefaultEncoderTimeKey          = "ts"
	DefaultEncoderCallerKey        = "caller"
	DefaultEncoderStacktraceKey    = "stacktrace"
	DefaultEncoderConsoleSeparator = "\t"
)

var (
	DefaultOutputPath      = []string{"stderr"}
	DefaultErrorOutputPath = []string{"stderr"}
)

func buildTimeEncoder(layout string) zapcore.TimeEncoder {
	return func(ts time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(ts.Format(layout))
	}
}

// HandleZapFields turns alternating keys and values into zap fields.
// A zap.Field may be passed in place of a key-value pair, a key without value or a non string key is logged under !BADKEY.
func HandleZapFields(args []any, additional ...zap.Field) []zap.Field {
	if len(args) == 0 {
		return additional
	}

	fields := make([]zap.Field, 0, len(args)/2+len(additional))
	for i := 0; i < len(args); i += 2 {
		switch k := args[i].(type) {
		case string:
			if i == len(args)-1 {
				fields = append(fields, zap.String("!BADKEY", k))
			} else {
				switch a := args[i+1].(type) {
				case []byte:
					fields = append(fields, zap.ByteString(k, a))
				default:
					fields = append(fields, zap.Any(k, args[i+1]))
				}
			}
		case zap.Field:
			fields = append(fields, k)
			i--
		default:
			fields = append(fields, zap.Any("!BADKEY", k))
			i--
		}
	}

	return append(fields, additional...)
}

func DefaultEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:          DefaultEncoderMessageKey,
		LevelKey:            DefaultEncoderLevelKey,
		TimeKey:             DefaultEncoderTimeKey,
		NameKey:             DefaultEncoderNameKey,
		CallerKey:           DefaultEncoderCallerKey,
		StacktraceKey:       DefaultEncoderStacktraceKey,
		LineEnding:          zapcore.DefaultLineEnding,
		EncodeLevel:         zapcore.LowercaseLevelEncoder,
		EncodeTime:          buildTimeEncoder(TimeEncoderLayout),
		EncodeDuration:      zapcore.StringDurationEncoder,
		EncodeCaller:        zapcore.ShortCallerEncoder,
		EncodeName:          zapcore.FullNameEncoder,
		ConsoleSeparator:    DefaultEncoderConsoleSeparator,
		NewReflectedEncoder: sonicReflectEncoder,
	}
}

func sonicReflectEncoder(w io.Writer) zapcore.ReflectedEncoder {
	return encoder.NewStreamEncoder(w)
}

func DefaultConfig() *zap.Config {
	return &zap.Config{
		Level:             zap.NewAtomicLevelAt(DefaultLevel),
		DisableStacktrace: DefaultDisableStacktrace,
		Encoding:          DefaultEncoding,
		EncoderConfig:     DefaultEncoderConfig(),
		OutputPaths:       DefaultOutputPath,
		ErrorOutputPaths:  DefaultErrorOutputPath,
	}
}
