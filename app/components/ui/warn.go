package ui

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
)

var warningLogger atomic.Pointer[slog.Logger]

// SetWarningLogger enables development warnings about component misuse.
// Passing nil turns them off, which is the default.
func SetWarningLogger(logger *slog.Logger) {
	warningLogger.Store(logger)
}

func warn(msg string, attrs ...any) {
	logger := warningLogger.Load()
	if logger == nil {
		return
	}
	logger.Log(context.Background(), slog.LevelWarn, msg, attrs...)
}

// newID returns an id for a field that was not given one.
func newID() string {
	return "ui-" + uuid.NewString()
}
