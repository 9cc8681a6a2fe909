// Package log provides category-tagged, leveled logging for pydev.
//
// pydev is an interactive CLI: stdout belongs to command output, so logs go
// to a file (default ~/.pydev/pydev.log). Before Init is called all log
// calls are discarded, which keeps tests quiet without setup.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Category tags a log record with the subsystem it came from.
type Category string

const (
	CatCLI     Category = "cli"
	CatConfig  Category = "config"
	CatPython  Category = "python"
	CatResolve Category = "resolve"
	CatDB      Category = "db"
	CatWatch   Category = "watch"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Init opens (or creates) the log file at path and routes all subsequent
// log calls to it. Verbose enables debug-level records.
func Init(path string, verbose bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger.Store(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return nil
}

func log(level slog.Level, cat Category, msg string, args ...any) {
	l := logger.Load()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, msg, append([]any{"cat", string(cat)}, args...)...)
}

// Debug logs a debug-level record tagged with the given category.
func Debug(cat Category, msg string, args ...any) {
	log(slog.LevelDebug, cat, msg, args...)
}

// Info logs an info-level record tagged with the given category.
func Info(cat Category, msg string, args ...any) {
	log(slog.LevelInfo, cat, msg, args...)
}

// Warn logs a warn-level record tagged with the given category.
func Warn(cat Category, msg string, args ...any) {
	log(slog.LevelWarn, cat, msg, args...)
}

// Error logs an error-level record tagged with the given category.
func Error(cat Category, msg string, args ...any) {
	log(slog.LevelError, cat, msg, args...)
}

// ErrorErr logs an error-level record with the error attached as an "error"
// attribute, keeping call sites terse.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	log(slog.LevelError, cat, msg, append([]any{"error", err}, args...)...)
}
