package core

import (
	"errors"
	"testing"

	"github.com/donkeywon/randrange/errs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrStackCore(t *testing.T) {
	zc, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(NewErrStackCore(zc))

	err := errs.WithCode(errs.Wrap(errors.New("low > high"), "draw"), errs.CodeInvalidRange)
	l.Error("failed", zap.Error(err), zap.Int("n", 3))
	l.Info("plain", zap.Int("n", 4))
	l.Debug("filtered")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	ctx := entries[0].ContextMap()
	require.NotContains(t, ctx, "error")
	require.Equal(t, "InvalidRange", ctx[codeField])
	require.Equal(t, int64(3), ctx["n"])
	require.Contains(t, entries[0].Stack, stackPrefix+"low > high")
	require.Contains(t, entries[0].Stack, "cause: draw")

	require.Empty(t, entries[1].Stack)
	require.Equal(t, map[string]any{"n": int64(4)}, entries[1].ContextMap())
}

func TestGoroutineCore(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(NewGoroutineCore(zc)).With(zap.String("worker", "w0"))

	l.Info("tagged")
	l.Info("explicit", zap.Int64(goroutineField, -1))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Positive(t, entries[0].ContextMap()[goroutineField])
	require.Equal(t, "w0", entries[0].ContextMap()["worker"])
	require.Equal(t, int64(-1), entries[1].ContextMap()[goroutineField])
}
