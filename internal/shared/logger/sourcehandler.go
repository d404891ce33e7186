package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceHandler attaches the caller location to records at or above a
// threshold level. The wrapped handler must be built with AddSource: false.
type sourceHandler struct {
	next      slog.Handler
	threshold slog.Level
}

// NewSourceHandler wraps next so that only records with level >= threshold
// carry a source attribute.
func NewSourceHandler(next slog.Handler, threshold slog.Level) slog.Handler {
	return &sourceHandler{next: next, threshold: threshold}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.threshold {
		src := r.PC
		if src == 0 {
			var pcs [1]uintptr
			runtime.Callers(4, pcs[:])
			src = pcs[0]
		}
		frame, _ := runtime.CallersFrames([]uintptr{src}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), threshold: h.threshold}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), threshold: h.threshold}
}
