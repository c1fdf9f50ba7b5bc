// Package logger wraps zerolog behind the small surface the portal
// needs: a console logger with bound fields plus level parsing for
// config values.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger construction options.
type Config struct {
	Level      zerolog.Level
	TimeFormat string
	Output     io.Writer
}

// Logger is a leveled logger with structured field support.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger builds a console logger. Omitted options default to info
// level, RFC3339 timestamps, and stdout.
func NewLogger(cfg *Config) *Logger {
	if cfg == nil {
		cfg = &Config{Level: zerolog.InfoLevel}
	}
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat}).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}
}

// ParseLevel maps a config string to a logging level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// WithFields returns a logger that attaches the fields to every entry.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

// Info logs at info level. Trailing arguments are key/value pairs.
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *Logger) Error(err error, msg string, fields ...interface{}) {
	l.zl.Error().Err(err).Fields(fields).Msg(msg)
}

// Fatal logs the error and exits the process.
func (l *Logger) Fatal(err error, msg string, fields ...interface{}) {
	l.zl.Fatal().Err(err).Fields(fields).Msg(msg)
}
