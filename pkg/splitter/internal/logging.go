package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logMu   sync.Mutex
	logFile *os.File
	logPath string
	output  io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Must be called before the
// first logger is requested to take effect.
func SetLogPath(path string) {
	logMu.Lock()
	defer logMu.Unlock()
	logPath = path
}

// SetLogOutput replaces the log destination. Intended for tests and for
// hosts that already own a log sink. Must be called before the first logger
// is requested to take effect.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	output = w
}

func writer() io.Writer {
	logMu.Lock()
	defer logMu.Unlock()

	if output != nil {
		return output
	}

	if logPath == "" {
		output = os.Stdout
		return output
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		output = os.Stdout
		return output
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Can't open log file, fall back to console-only
		output = os.Stdout
		return output
	}

	logFile = f
	output = io.MultiWriter(os.Stdout, logFile)
	return output
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = slog.New(slog.NewJSONHandler(writer(), &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// GetInternalLogger returns the logger used by the splitter packages themselves.
// It is quiet (error level) unless raised with SetInternalLogLevel.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar.Set(slog.LevelError)
		internalLogger = slog.New(slog.NewJSONHandler(writer(), &slog.HandlerOptions{
			Level: internalLevelVar,
		})).With("lib", "splitter")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to slog levels.
// Anything else is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	logMu.Lock()
	defer logMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
