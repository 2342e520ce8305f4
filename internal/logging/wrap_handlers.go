package logging

import (
	"context"
	"log/slog"
)

// FieldSessionID groups every line written by one CLI invocation.
const FieldSessionID = "session_id"

// wrapHandler decorates another handler: it drops records below floor and
// stamps the remaining ones with fixed attributes. Stamped attributes are
// added at Handle time so they stay at the top level even inside groups.
type wrapHandler struct {
	next  slog.Handler
	floor slog.Leveler
	stamp []slog.Attr
}

func newSessionIDHandler(next slog.Handler, sessionID string) slog.Handler {
	if next == nil {
		return NoopHandler{}
	}
	if w, ok := next.(*wrapHandler); ok {
		out := *w
		out.stamp = append(append([]slog.Attr(nil), w.stamp...), slog.String(FieldSessionID, sessionID))
		return &out
	}
	return &wrapHandler{next: next, stamp: []slog.Attr{slog.String(FieldSessionID, sessionID)}}
}

func (h *wrapHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.floor != nil && level < h.floor.Level() {
		return false
	}
	return h.next.Enabled(ctx, level)
}

func (h *wrapHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.floor != nil && record.Level < h.floor.Level() {
		return nil
	}
	if len(h.stamp) > 0 {
		record = record.Clone()
		record.AddAttrs(h.stamp...)
	}
	return h.next.Handle(ctx, record)
}

func (h *wrapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	out.next = h.next.WithAttrs(attrs)
	return &out
}

func (h *wrapHandler) WithGroup(name string) slog.Handler {
	out := *h
	out.next = h.next.WithGroup(name)
	return &out
}

// WithLevelOverride returns a logger that drops records below level. The
// logger's attributes and session stamp are kept; a previous override is
// replaced rather than stacked, so the level can also be lowered again.
func WithLevelOverride(logger *slog.Logger, level slog.Level) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	if w, ok := logger.Handler().(*wrapHandler); ok {
		out := *w
		out.floor = level
		return slog.New(&out)
	}
	return slog.New(&wrapHandler{next: logger.Handler(), floor: level})
}
