package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger at the given level. Format "console" selects the
// development encoder; anything else logs JSON.
func New(level, format string) (logger *zap.Logger, err error) {
	var lvl zapcore.Level
	lvl, err = zapcore.ParseLevel(level)
	if err != nil {
		err = errors.Wrapf(err, "invalid log level: %s", level)
		return logger, err
	}

	logConfig := zap.NewProductionConfig()
	if format == "console" {
		logConfig = zap.NewDevelopmentConfig()
	}
	logConfig.Level = zap.NewAtomicLevelAt(lvl)

	logger, err = logConfig.Build()
	if err != nil {
		err = errors.Wrap(err, "failed to build logger")
		return logger, err
	}

	return logger, err
}
