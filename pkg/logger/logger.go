package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"linguachat/config"
)

// Logger wraps zerolog behind a small kv-style API.
// The zero value is a valid no-op logger (handy in tests).
type Logger struct {
	zl zerolog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LoggerMode.Level))
	if err != nil || cfg.LoggerMode.Level == "" {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if cfg.LoggerMode.Development {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	} else {
		zl = zerolog.New(os.Stderr).
			Level(level).
			With().Timestamp().Logger()
	}

	return &Logger{zl: zl}, nil
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.zl.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.zl.Info().Fields(keysAndValues).Msg(msg)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.zl.Warn().Fields(keysAndValues).Msg(msg)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.zl.Error().Fields(keysAndValues).Msg(msg)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}
