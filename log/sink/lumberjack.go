package sink

import (
	"net/url"

	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

// lumberjack syncs nothing itself, writes go straight to the file.
type lumberjackSink struct {
	*lumberjack.Logger
}

func (lumberjackSink) Sync() error { return nil }

func newLumberjackSink(u *url.URL) (zap.Sink, error) {
	path, rc, err := parseRotateCfg(u)
	if err != nil {
		return nil, err
	}
	return lumberjackSink{&lumberjack.Logger{
		Filename:   path,
		MaxSize:    rc.MaxSize,
		MaxAge:     rc.MaxAge,
		MaxBackups: rc.MaxBackups,
		LocalTime:  rc.LocalTime,
		Compress:   rc.Compress,
	}}, nil
}
