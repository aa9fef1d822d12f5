package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// MaxAttrLen is the maximum length of a string attribute value before
// it is truncated. Long enough to show a useful prefix of a page body,
// short enough that one record never dominates the log.
const MaxAttrLen = 256

// TrimHandler wraps an slog.Handler and truncates oversized string
// attribute values.
//
// Design decision: a handler wrapper rather than a custom logger
// because it composes with any underlying handler (text, JSON) and
// keeps the standard slog API at every call site.
type TrimHandler struct {
	// handler is the underlying slog handler that receives trimmed records.
	handler slog.Handler
}

// NewTrimHandler creates a TrimHandler wrapping the given handler.
// If handler is nil, the returned TrimHandler uses slog.Default().Handler().
func NewTrimHandler(handler slog.Handler) *TrimHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TrimHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TrimHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle trims oversized attributes in the record, then passes it to
// the underlying handler.
func (h *TrimHandler) Handle(ctx context.Context, r slog.Record) error {
	trimmed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		trimmed.AddAttrs(trimAttr(a))
		return true
	})
	return h.handler.Handle(ctx, trimmed)
}

// WithAttrs returns a new TrimHandler whose underlying handler has the
// given attributes, trimmed.
func (h *TrimHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	trimmed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		trimmed[i] = trimAttr(a)
	}
	return &TrimHandler{handler: h.handler.WithAttrs(trimmed)}
}

// WithGroup returns a new TrimHandler with the given group name.
func (h *TrimHandler) WithGroup(name string) slog.Handler {
	return &TrimHandler{handler: h.handler.WithGroup(name)}
}

// trimAttr truncates string attribute values longer than MaxAttrLen.
// Group attributes are trimmed recursively.
func trimAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		groupAttrs := a.Value.Group()
		trimmed := make([]slog.Attr, len(groupAttrs))
		for i, ga := range groupAttrs {
			trimmed[i] = trimAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(trimmed...)}
	}

	if a.Value.Kind() == slog.KindString {
		s := a.Value.String()
		if len(s) > MaxAttrLen {
			return slog.String(a.Key, fmt.Sprintf("%s... (%d bytes total)", s[:MaxAttrLen], len(s)))
		}
	}

	return a
}

// NewLogger creates a *slog.Logger writing text records to w with
// oversized attributes trimmed.
//
// If verbose is true the level is Debug, otherwise Warn. Warn keeps the
// default CLI output limited to fetch failures and real problems.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	return slog.New(NewTrimHandler(slog.NewTextHandler(w, opts)))
}
