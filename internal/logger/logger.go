// Package logger holds the process-wide slog logger shared by the CLI
// and the reconciliation engine.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	global *slog.Logger
)

// Setup builds the process logger writing to stderr and installs it as
// the global instance. Debug lowers the level threshold.
func Setup(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	mu.Lock()
	global = l
	mu.Unlock()
	return l
}

// Get returns the installed logger, or an info-level stderr logger when
// Setup has not run (library use without the CLI).
func Get() *slog.Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		return l
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
