// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger provides a context-aware logger built on [slog].
package logger

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// fanout sends log records to every attached handler. Handlers can be
// attached and detached while the logger is in use; loggers derived with
// WithAttrs or WithGroup see the handlers attached at the time of the call.
type fanout struct {
	mu       sync.RWMutex
	handlers []slog.Handler
	h        slog.Handler
}

func newFanout() *fanout {
	return &fanout{h: slogmulti.Fanout()}
}

func (f *fanout) current() slog.Handler {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.h
}

func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	return f.current().Enabled(ctx, level)
}

func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	return f.current().Handle(ctx, r)
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.current().WithAttrs(attrs)
}

func (f *fanout) WithGroup(name string) slog.Handler {
	return f.current().WithGroup(name)
}

func (f *fanout) attach(h slog.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(slices.Clip(f.handlers), h)
	f.h = slogmulti.Fanout(f.handlers...)
}

func (f *fanout) detach(h slog.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = slices.DeleteFunc(slices.Clone(f.handlers), func(hh slog.Handler) bool {
		return hh == h
	})
	f.h = slogmulti.Fanout(f.handlers...)
}

// Logger encapsulates an [slog.Logger] and allows attaching and detaching
// multiple [slog.Handler] at runtime.
//
// It also holds a [slog.LevelVar] that can be used to control the level of handlers that are created with it.
type Logger struct {
	*slog.Logger
	Level   *slog.LevelVar
	handler *fanout
}

// New creates a new Logger. The logger initially has no handlers.
// Its LevelVar is initialized to LevelInfo if level is nil.
func New(level *slog.LevelVar) *Logger {
	if level == nil {
		level = new(slog.LevelVar)
		level.Set(slog.LevelInfo)
	}
	f := newFanout()
	return &Logger{
		Logger:  slog.New(f),
		Level:   level,
		handler: f,
	}
}

// Attach attaches a handler to the logger.
func (l *Logger) Attach(h slog.Handler) { l.handler.attach(h) }

// Detach detaches a handler from the logger.
func (l *Logger) Detach(h slog.Handler) { l.handler.detach(h) }

var defaultLogger = newDefaultLogger()

func newDefaultLogger() *Logger {
	l := New(nil)
	l.Attach(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: l.Level}))
	return l
}

// Put returns a new context with the provided [Logger].
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get retrieves the [Logger] from the context.
//
// If the context has no [Logger], it returns a default [Logger] that discards all
// messages.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// IsDefault returns true if l is the default [Logger].
func IsDefault(l *Logger) bool { return l == defaultLogger }

// Debug logs a debug message.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs an info message.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a warning message.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs an error message.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

