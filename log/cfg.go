package log

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/donkeywon/randrange/log/core"
	_ "github.com/donkeywon/randrange/log/encoder" // console-lite encoding
	"github.com/donkeywon/randrange/log/sink"
	"github.com/donkeywon/randrange/util"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FilepathSplitter   = ","
	DefaultFilepath    = "stderr"
	DefaultMaxFileSize = 100
	DefaultMaxBackups  = 30
	DefaultMaxAge      = 30
	DefaultCompress    = false
	DefaultRotator     = RotatorLumberjack

	RotatorLumberjack = "lumberjack"
	RotatorTimberjack = "timberjack"
)

type Cfg struct {
	Filepath    string `long:"path"          env:"PATH"          yaml:"filepath"    toml:"filepath"    description:"Comma separated outputs: stdout, stderr or file paths"`
	Encoding    string `long:"encoding"      env:"ENCODING"      yaml:"encoding"    toml:"encoding"    description:"console, console-lite or json"                         validate:"oneof=console console-lite json"`
	Level       string `long:"level"         env:"LEVEL"         yaml:"level"       toml:"level"       description:"debug, info, warn or error"`
	Rotator     string `long:"rotator"       env:"ROTATOR"       yaml:"rotator"     toml:"rotator"     description:"File rotation backend"                                  validate:"oneof=lumberjack timberjack"`
	MaxFileSize int    `long:"max-file-size" env:"MAX_FILE_SIZE" yaml:"maxFileSize" toml:"maxFileSize" description:"Megabytes before a log file is rotated"               validate:"gte=1"`
	MaxBackups  int    `long:"max-backups"   env:"MAX_BACKUPS"   yaml:"maxBackups"  toml:"maxBackups"  description:"Rotated files to keep"                                 validate:"gte=0"`
	MaxAge      int    `long:"max-age"       env:"MAX_AGE"       yaml:"maxAge"      toml:"maxAge"      description:"Days to keep rotated files"                            validate:"gte=0"`
	Compress    bool   `long:"compress"      env:"COMPRESS"      yaml:"compress"    toml:"compress"    description:"Compress rotated files, off by default"`
	Goid        bool   `long:"goid"          env:"GOID"          yaml:"goid"        toml:"goid"        description:"Add goroutine id to every entry"`
}

func NewCfg() *Cfg {
	return &Cfg{
		Level:       DefaultLevel.String(),
		Filepath:    DefaultFilepath,
		MaxFileSize: DefaultMaxFileSize,
		MaxBackups:  DefaultMaxBackups,
		MaxAge:      DefaultMaxAge,
		Compress:    DefaultCompress,
		Encoding:    DefaultEncoding,
		Rotator:     DefaultRotator,
	}
}

func (c *Cfg) Build(opts ...zap.Option) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = c.Encoding
	cfg.OutputPaths, err = c.buildOutputs()
	if err != nil {
		return nil, err
	}

	opts = append(opts, zap.WrapCore(core.NewErrStackCore), zap.AddCaller(), zap.AddCallerSkip(1))
	if c.Goid {
		opts = append(opts, zap.WrapCore(core.NewGoroutineCore))
	}
	return cfg.Build(opts...)
}

func (c *Cfg) buildOutputs() ([]string, error) {
	paths := util.Unique(strings.Split(c.Filepath, FilepathSplitter))
	var outputs []string
	for _, fp := range paths {
		fp = strings.TrimSpace(fp)
		fpl := strings.ToLower(fp)
		switch fpl {
		case "":
			continue
		case "stdout":
			outputs = append(outputs, "stdout")
		case "stderr":
			outputs = append(outputs, "stderr")
		default:
			afp, err := filepath.Abs(fp)
			if err != nil {
				return nil, err
			}
			if !util.DirExist(filepath.Dir(afp)) {
				return nil, errors.New("log dir not exists: " + fp)
			}
			u, err := c.rotatorURL(filepath.ToSlash(afp))
			if err != nil {
				return nil, err
			}
			outputs = append(outputs, u)
		}
	}
	if len(outputs) == 0 {
		outputs = DefaultErrorOutputPath
	}
	return outputs, nil
}

func (c *Cfg) rotatorURL(fp string) (string, error) {
	rc := sink.RotateCfg{
		MaxSize:    c.MaxFileSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
		LocalTime:  true,
	}
	bs, err := sonic.Marshal(rc)
	if err != nil {
		return "", errors.New("rotate config invalid")
	}

	scheme := sink.SchemeLumberjack
	if c.Rotator == RotatorTimberjack {
		scheme = sink.SchemeTimberjack
	}
	return scheme + "://" + fp + "?" + string(bs), nil
}

func Debug(option ...zap.Option) *zap.Logger {
	lc := NewCfg()
	lc.Level = zap.DebugLevel.String()
	l, _ := lc.Build(append(option, zap.Development())...)
	return l
}
