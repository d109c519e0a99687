package logger

import (
	"fmt"
	"os"

	"github.com/GlebRadaev/dailymine/internal/config"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"info":  zapcore.InfoLevel,
	"error": zapcore.ErrorLevel,
	"debug": zapcore.DebugLevel,
}

func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
	}

	var logger *zap.Logger
	switch conf.LogFormat {
	case "", "console", "json":
		encoding := conf.LogFormat
		if encoding == "" {
			encoding = "console"
		}
		if encoding == "json" {
			encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
			encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		}

		c := zap.Config{
			Level:            zap.NewAtomicLevelAt(lvl),
			Sampling:         nil,
			Encoding:         encoding,
			EncoderConfig:    encodeConfig,
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		}

		var err error
		logger, err = c.Build()
		if err != nil {
			return fmt.Errorf("unable to create zap logger, error: %w", err)
		}
	case "logfmt":
		encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		core := zapcore.NewCore(
			zaplogfmt.NewEncoder(encodeConfig),
			zapcore.Lock(os.Stdout),
			zap.NewAtomicLevelAt(lvl),
		)
		logger = zap.New(core, zap.ErrorOutput(zapcore.Lock(os.Stderr)))
	default:
		return fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
