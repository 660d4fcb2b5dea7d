// Package menusystem provides a hierarchical menu engine for embedded
// displays, terminal front ends, and other constrained targets.
//
// The package models a tree of selectable items and nested menus driven by
// a cursor. System owns the tree, forwards navigation (next, prev, select,
// back, reset) to whichever menu currently holds input, and draws on demand
// through an injected Renderer. The core is a synchronous state machine;
// rendering backends, declarative definitions, persistence, and interactive
// drivers live in the sub-packages textview, menucfg, state, and tui.
package menusystem

import (
	"log/slog"

	"github.com/CDFER/menusystem/pkg/menusystem/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first logging call to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for the library's own logger,
// which reports menu transitions at debug level.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger releases the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
