// Package logger configures structured logging to a rotating log file
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup points the default slog logger at a rotating file and returns the
// writer so that it can be closed on exit.
func Setup(path string, level slog.Level) io.Closer {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(lj, level))

	return lj
}

// Dump logs a detailed representation of v at debug level. It is used to trace
// the messages flowing through the update loops.
func Dump(msg string, v any) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	slog.Debug(msg, slog.String("value", spew.Sdump(v)))
}
