// Package logging builds the charmbracelet/log loggers used across algoviz
// and carries them through context.Context.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger with timestamp formatting that writes to w and
// filters messages below level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Level maps the --verbose flag onto a log level.
func Level(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// Discard returns a logger that drops everything. The TUI uses it when no
// log file was requested so log lines never tear the alternate screen.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// OpenFile opens path for appending and returns a logger writing to it along
// with the file so the caller can close it.
func OpenFile(path string, level log.Level) (*log.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, level), f, nil
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a new context with l attached.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger from ctx, or log.Default() if none.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
