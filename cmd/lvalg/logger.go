// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is the CLI's structured logger. Kernel operations are logged with
// the fields op, name, shape and kind.
type Logger struct {
	*slog.Logger
}

// newLogger builds a Logger from the --log-format and --log-level flags.
func newLogger(w io.Writer, format, level string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}

	return &Logger{Logger: slog.New(h)}, nil
}

// WithOp returns a child logger tagged with the command name.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.With("op", op)}
}

// LogOp records one kernel call: failures at error level, successes at debug.
func (l *Logger) LogOp(ctx context.Context, name, shape, kind string, err error) {
	attrs := []any{"name", name, "shape", shape, "kind", kind}
	if err != nil {
		l.ErrorContext(ctx, "operation failed", append(attrs, "error", err)...)
		return
	}
	l.DebugContext(ctx, "operation completed", attrs...)
}

// LogSave records a workspace rewrite triggered by --save.
func (l *Logger) LogSave(ctx context.Context, filename, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed", "filename", filename, "name", name, "error", err)
		return
	}
	l.InfoContext(ctx, "result saved", "filename", filename, "name", name)
}
