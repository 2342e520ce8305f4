package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// consoleHandler writes one human-readable line per record:
//
//	15:04:05 INFO  editor: paste merged merge_mode=append applied=2
//
// The component attribute becomes the line prefix; every other attribute is
// printed as key=value, group names joined with dots.
type consoleHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Leveler
	addSource bool

	component string
	// preset holds attributes from WithAttrs, already rendered.
	preset string
	group  string
}

func newPrettyHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return &consoleHandler{mu: new(sync.Mutex), w: w, level: lvl, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.Enabled(context.Background(), r.Level) {
		return nil
	}
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	component := h.component
	var tail strings.Builder
	tail.WriteString(h.preset)
	r.Attrs(func(a slog.Attr) bool {
		if h.group == "" && a.Key == FieldComponent && component == "" {
			component = plainValue(a.Value)
			return true
		}
		writeAttr(&tail, h.group, a)
		return true
	})

	var line strings.Builder
	line.WriteString(ts.Local().Format("15:04:05"))
	line.WriteByte(' ')
	line.WriteString(levelLabel(r.Level))
	line.WriteByte(' ')
	if component != "" {
		line.WriteString(component)
		line.WriteString(": ")
	}
	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		msg = "(no message)"
	}
	line.WriteString(msg)
	if h.addSource {
		if r.PC != 0 {
			src, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
			if src.File != "" {
				fmt.Fprintf(&line, " [%s:%d]", filepath.Base(src.File), src.Line)
			}
		}
	}
	line.WriteString(tail.String())
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	var b strings.Builder
	b.WriteString(h.preset)
	for _, a := range attrs {
		if h.group == "" && a.Key == FieldComponent {
			out.component = plainValue(a.Value)
			continue
		}
		writeAttr(&b, h.group, a)
	}
	out.preset = b.String()
	return &out
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := *h
	out.group = joinKey(h.group, name)
	return &out
}

// writeAttr appends " key=value", expanding groups into dotted keys.
func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		next := prefix
		if a.Key != "" {
			next = joinKey(prefix, a.Key)
		}
		for _, member := range a.Value.Group() {
			writeAttr(b, next, member)
		}
		return
	}
	key := joinKey(prefix, a.Key)
	if key == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(formatValue(a.Value))
}

func joinKey(prefix, key string) string {
	switch {
	case prefix == "":
		return key
	case key == "":
		return prefix
	}
	return prefix + "." + key
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN "
	case level >= slog.LevelInfo:
		return "INFO "
	}
	return "DEBUG"
}
