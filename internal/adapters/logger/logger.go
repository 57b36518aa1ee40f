// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/setupjs/internal/adapters/detector"
	"go.trai.ch/setupjs/internal/core/ports"
)

// FormatEnv overrides the detected log format: auto, pretty, actions or json.
const FormatEnv = "SETUPJS_LOG_FORMAT"

// grouper is implemented by handlers that render log sections natively.
type grouper interface {
	StartGroup(name string) error
	EndGroup() error
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
	format detector.Format
	output io.Writer
	level  *slog.LevelVar
	groups []string
}

// New creates a Logger whose format and level follow the detected environment.
func New() ports.Logger {
	env := detector.DetectEnvironment()

	l := &Logger{
		output: os.Stderr,
		format: detector.ResolveFormat(env, os.Getenv(FormatEnv)),
		level:  &slog.LevelVar{},
	}
	if l.format == detector.FormatActions {
		// The runner parses workflow commands from stdout.
		l.output = os.Stdout
	}
	if env.Debug {
		l.level.Set(slog.LevelDebug)
	}
	l.rebuild()
	return l
}

// rebuild swaps the handler for the current output and format. Callers hold mu or own l.
func (l *Logger) rebuild() {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: l.level}
	switch l.format {
	case detector.FormatJSON:
		handler = slog.NewJSONHandler(l.output, opts)
	case detector.FormatActions:
		handler = NewActionsHandler(l.output)
	default:
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination, keeping the format.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetFormat switches the rendering format, keeping the output.
func (l *Logger) SetFormat(f detector.Format) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.format = f
	l.rebuild()
}

// SetDebug toggles debug-level messages.
func (l *Logger) SetDebug(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.format == detector.FormatJSON {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// Group opens a log section. Sections do not nest in CI logs, so an open
// section is closed before a new one starts.
func (l *Logger) Group(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.groups) > 0 && l.format == detector.FormatActions {
		l.endGroupLocked()
	}
	l.groups = append(l.groups, name)

	if g, ok := l.logger.Handler().(grouper); ok {
		_ = g.StartGroup(name)
		return
	}
	l.logger.Info(name, "group", "start")
}

// EndGroup closes the innermost open section.
func (l *Logger) EndGroup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.endGroupLocked()
}

func (l *Logger) endGroupLocked() {
	if len(l.groups) == 0 {
		return
	}
	name := l.groups[len(l.groups)-1]
	l.groups = l.groups[:len(l.groups)-1]

	if g, ok := l.logger.Handler().(grouper); ok {
		_ = g.EndGroup()
		return
	}
	l.logger.Info(name, "group", "end")
}
