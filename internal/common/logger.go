package common

import (
	"io"
	"log/slog"
	"os"
)

// LogLevel represents logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelDebug:
		return "debug"
	default:
		return "info"
	}
}

// ToSlogLevel converts LogLevel to slog.Level
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LogLevelError:
		return slog.LevelError
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Logger wraps slog with the context helpers used across demosync.
type Logger struct {
	*slog.Logger
	level  LogLevel
	masker *Masker
}

func newLogger(h slog.Handler, level LogLevel, masker *Masker) *Logger {
	return &Logger{Logger: slog.New(h), level: level, masker: masker}
}

// NewLogger creates a text logger writing to stderr.
func NewLogger(level LogLevel) *Logger {
	return NewTextLogger(os.Stderr, level)
}

// NewTextLogger creates a text logger writing to w. Sensitive attributes are masked.
func NewTextLogger(w io.Writer, level LogLevel) *Logger {
	m := NewMasker()
	opts := &slog.HandlerOptions{Level: level.ToSlogLevel(), ReplaceAttr: m.ReplaceAttr}
	return newLogger(slog.NewTextHandler(w, opts), level, m)
}

// NewJSONLogger creates a structured logger with JSON output on stderr.
func NewJSONLogger(level LogLevel) *Logger {
	m := NewMasker()
	opts := &slog.HandlerOptions{Level: level.ToSlogLevel(), ReplaceAttr: m.ReplaceAttr}
	return newLogger(slog.NewJSONHandler(os.Stderr, opts), level, m)
}

// NewColorLogger creates a logger backed by ColorHandler on stderr.
func NewColorLogger(level LogLevel) *Logger {
	h := NewColorHandler(os.Stderr, &slog.HandlerOptions{Level: level.ToSlogLevel()})
	h.SetColorEnabled(true)
	return newLogger(h, level, h.masker)
}

// Level returns the current log level
func (l *Logger) Level() LogLevel {
	return l.level
}

// EnableMasking toggles masking of sensitive attributes for this logger.
func (l *Logger) EnableMasking(enabled bool) {
	if l.masker != nil {
		l.masker.SetEnabled(enabled)
	}
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), level: l.level, masker: l.masker}
}

// WithComponent returns a logger with component context
func (l *Logger) WithComponent(component string) *Logger {
	return l.with("component", component)
}

// WithWorkspace returns a logger scoped to a remote workspace
func (l *Logger) WithWorkspace(workspaceID string) *Logger {
	return l.with("workspace", workspaceID)
}

// WithResource returns a logger scoped to a remote environment or collection
func (l *Logger) WithResource(kind, name, uid string) *Logger {
	return l.with("kind", kind, "name", name, "uid", uid)
}

// WithRequest returns a logger with HTTP request context
func (l *Logger) WithRequest(method, url string) *Logger {
	return l.with("method", method, "url", url)
}

var defaultLogger = NewLogger(LogLevelInfo)

// SetDefaultLogger sets the global default logger
func SetDefaultLogger(logger *Logger) {
	defaultLogger = logger
}

// GetLogger returns the default logger
func GetLogger() *Logger {
	return defaultLogger
}

// LogError logs an error with context
func LogError(msg string, err error, attrs ...any) {
	args := append([]any{"error", err}, attrs...)
	defaultLogger.Error(msg, args...)
}

// LogInfo logs informational message
func LogInfo(msg string, attrs ...any) {
	defaultLogger.Info(msg, attrs...)
}

// LogDebug logs debug message
func LogDebug(msg string, attrs ...any) {
	defaultLogger.Debug(msg, attrs...)
}

// LogWarn logs warning message
func LogWarn(msg string, attrs ...any) {
	defaultLogger.Warn(msg, attrs...)
}
