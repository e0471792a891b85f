package winver

import (
	"context"
	"log/slog"
	"os"
)

const (
	// Custom levels
	LogLevelTrace = slog.Level(-8)
)

// SetLoggerHandler replaces the default slog handler used by this module.
// A nil handler keeps the current one.
func SetLoggerHandler(h slog.Handler) {
	if h == nil {
		return // Keep default
	}
	slog.SetDefault(slog.New(h))
}

// SetDebugLevel logs everything from debug up as text on stderr.
func SetDebugLevel(addSource bool) {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: addSource,
	})

	slog.SetDefault(slog.New(h))
}

// Logs trace messages, level = -8
func LogTrace(msg string, args ...any) {
	slog.Default().Log(context.Background(), LogLevelTrace, msg, args...)
}
