// Package sink registers rotating file sinks with zap. The rotation settings
// travel as JSON in the URL query, e.g.
//
//	lumberjack:///var/log/randrange.log?{"maxsize":100,"maxage":30,"maxbackups":30,"compress":true,"localtime":true}
package sink

import (
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/donkeywon/randrange/errs"
	"go.uber.org/zap"
)

const (
	SchemeLumberjack = "lumberjack"
	SchemeTimberjack = "timberjack"

	DefaultMaxFileSize = 100
	DefaultMaxBackups  = 30
	DefaultMaxAge      = 30
	DefaultCompress    = false
)

type RotateCfg struct {
	MaxSize    int  `json:"maxsize"`
	MaxAge     int  `json:"maxage"`
	MaxBackups int  `json:"maxbackups"`
	LocalTime  bool `json:"localtime"`
	Compress   bool `json:"compress"`
}

func DefaultRotateCfg() RotateCfg {
	return RotateCfg{
		MaxSize:    DefaultMaxFileSize,
		MaxAge:     DefaultMaxAge,
		MaxBackups: DefaultMaxBackups,
		LocalTime:  true,
		Compress:   DefaultCompress,
	}
}

func init() {
	_ = zap.RegisterSink(SchemeLumberjack, newLumberjackSink)
	_ = zap.RegisterSink(SchemeTimberjack, newTimberjackSink)
}

// parseRotateCfg reads the file path and rotation settings of a sink URL.
// Fields missing from the query keep their defaults.
func parseRotateCfg(u *url.URL) (string, RotateCfg, error) {
	rc := DefaultRotateCfg()
	if u.Path == "" {
		return "", rc, errs.Errorf("sink url has no file path: %s", u.String())
	}
	if u.RawQuery != "" {
		err := sonic.UnmarshalString(u.RawQuery, &rc)
		if err != nil {
			return "", rc, errs.Wrapf(err, "invalid rotate config of %s sink", u.Scheme)
		}
	}
	return u.Path, rc, nil
}
