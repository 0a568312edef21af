package pixcore

import (
	"log/slog"

	"github.com/gogpu/pixcore/internal/logging"
)

// SetLogger configures the logger for pixcore and all its sub-packages.
// By default, pixcore produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by pixcore:
//   - [slog.LevelDebug]: setup diagnostics (palette size, table ranges)
//   - [slog.LevelInfo]: lifecycle events (tables built, scene rendered)
//
// Compositing and geometry hot paths never log.
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	pixcore.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by pixcore. It is never nil.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.L()
}
