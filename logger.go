package fontpreview

import (
	"log/slog"

	"github.com/gogpu/fontpreview/internal/logger"
)

// SetLogger configures the logger for fontpreview and all its sub-packages.
// By default, fontpreview produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by fontpreview:
//   - [slog.LevelDebug]: per-file failures, registration swaps, cache pruning
//   - [slog.LevelInfo]: batch lifecycle (loaded, superseded, teardown)
//   - [slog.LevelWarn]: handles still bound at teardown
//
// Example:
//
//	fontpreview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger used by fontpreview.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Get()
}
