package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// ActionsHandler renders records as GitHub Actions workflow commands.
// Debug, warning and error records become ::debug::, ::warning:: and ::error::
// annotations; info records are written as plain log lines.
type ActionsHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

// NewActionsHandler creates an ActionsHandler writing to w.
func NewActionsHandler(w io.Writer) *ActionsHandler {
	if w == nil {
		w = os.Stdout
	}
	return &ActionsHandler{mu: &sync.Mutex{}, w: w}
}

// Enabled always reports true. The runner hides ::debug:: lines unless step debugging is on.
func (h *ActionsHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle writes the record as a workflow command.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ActionsHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		parts = append(parts, formatAttr("", attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr("", attr))
		return true
	})
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	var line string
	switch {
	case r.Level >= slog.LevelError:
		line = "::error::" + escapeData(msg)
	case r.Level >= slog.LevelWarn:
		line = "::warning::" + escapeData(msg)
	case r.Level < slog.LevelInfo:
		line = "::debug::" + escapeData(msg)
	default:
		line = msg
	}
	return h.write(line)
}

// StartGroup opens a collapsible section.
func (h *ActionsHandler) StartGroup(name string) error {
	return h.write("::group::" + escapeData(name))
}

// EndGroup closes the open section.
func (h *ActionsHandler) EndGroup() error {
	return h.write("::endgroup::")
}

func (h *ActionsHandler) write(line string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *ActionsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &ActionsHandler{mu: h.mu, w: h.w, attrs: newAttrs}
}

// WithGroup returns the handler unchanged; workflow commands have no attribute groups.
func (h *ActionsHandler) WithGroup(string) slog.Handler {
	return h
}

// escapeData encodes the characters workflow commands treat as delimiters.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}
