package sink

import (
	"net/url"

	"github.com/DeRuina/timberjack"
	"go.uber.org/zap"
)

const (
	compressionZstd = "zstd"
	compressionNone = "none"
)

type timberjackSink struct {
	*timberjack.Logger
}

func (timberjackSink) Sync() error { return nil }

func newTimberjackSink(u *url.URL) (zap.Sink, error) {
	path, rc, err := parseRotateCfg(u)
	if err != nil {
		return nil, err
	}
	compression := compressionNone
	if rc.Compress {
		compression = compressionZstd
	}
	return timberjackSink{&timberjack.Logger{
		Filename:    path,
		MaxSize:     rc.MaxSize,
		MaxAge:      rc.MaxAge,
		MaxBackups:  rc.MaxBackups,
		LocalTime:   rc.LocalTime,
		Compression: compression,
	}}, nil
}
