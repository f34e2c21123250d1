package log

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/donkeywon/randrange/errs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func errA() error {
	return errors.New("errA")
}

func errB() error {
	e := errA()
	_ = e
	return errs.Wrap(e, "errB")
}

func errC() error {
	e := errB()
	_ = e
	return errs.Wrap(e, "errC")
}

func TestLogErr(t *testing.T) {
	lc := NewCfg()
	lc.Filepath = "stdout"
	l, err := lc.Build()
	require.NoError(t, err)

	New(l).Error("error occurred", errC(), "low", 10, "high", 5)
}

func TestBuildInvalidLevel(t *testing.T) {
	lc := NewCfg()
	lc.Level = "loud"
	_, err := lc.Build()
	require.Error(t, err)
}

func TestBuildFileOutputs(t *testing.T) {
	dir := t.TempDir()
	for _, rotator := range []string{RotatorLumberjack, RotatorTimberjack} {
		lc := NewCfg()
		lc.Rotator = rotator
		lc.Encoding = "json"
		lc.Goid = true
		lc.Filepath = filepath.Join(dir, rotator+".log")
		l, err := lc.Build()
		require.NoError(t, err)
		New(l).Warn("written", "rotator", rotator)
		_ = l.Sync()

		bs, err := os.ReadFile(lc.Filepath)
		require.NoError(t, err)
		require.Contains(t, string(bs), "written")
		require.Contains(t, string(bs), "goid")
	}

	lc := NewCfg()
	lc.Filepath = filepath.Join(dir, "missing", "x.log")
	_, err := lc.Build()
	require.Error(t, err)
}

func TestConsoleLite(t *testing.T) {
	lc := NewCfg()
	lc.Encoding = "console-lite"
	lc.Filepath = "stdout"
	l, err := lc.Build()
	require.NoError(t, err)
	New(l).Info("lite")
}

func TestLoggerFields(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(zc))

	l.Debug("d", "k", 1)
	l.Info("i", zap.String("z", "v"))
	l.Warn("w", "dangling")
	l.Error("e", errA(), "k", []byte("b"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	require.Equal(t, map[string]any{"k": int64(1)}, entries[0].ContextMap())
	require.Equal(t, map[string]any{"z": "v"}, entries[1].ContextMap())
	require.Equal(t, map[string]any{"!BADKEY": "dangling"}, entries[2].ContextMap())
	require.Equal(t, "errA", entries[3].ContextMap()["error"])
	require.Equal(t, "b", entries[3].ContextMap()["k"])

	Nop().Info("dropped")
}

func TestHandleZapFields(t *testing.T) {
	require.Empty(t, HandleZapFields(nil))
	fs := HandleZapFields([]any{"a", 1, 2}, zap.Bool("x", true))
	require.Len(t, fs, 3)
	require.Equal(t, "!BADKEY", fs[1].Key)
	require.Equal(t, "x", fs[2].Key)
}
