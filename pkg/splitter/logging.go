package splitter

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/splitter/pkg/splitter/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first logger is used to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput sends log records to w instead of stdout and the log file.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum level of the library's own logging.
// It defaults to error; debug shows every state transition.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger flushes and closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
