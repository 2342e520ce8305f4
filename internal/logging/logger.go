package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mlinput/internal/config"
)

// LogFileName is the file written inside the configured log directory.
const LogFileName = "mlinput.log"

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// OutputPaths lists files or the names "stdout" and "stderr". Empty
	// means stderr.
	OutputPaths []string
	// Development adds caller information regardless of level.
	Development bool
	// SessionID, when set, is attached to every record as session_id.
	SessionID string
}

// New constructs a slog logger using the provided options. Caller
// information is included at debug level.
func New(opts Options) (*slog.Logger, error) {
	lvl := levelVar(opts.Level)
	w, err := openOutputs(opts.OutputPaths)
	if err != nil {
		return nil, err
	}
	h, err := newFormatHandler(opts.Format, w, lvl, opts.Development || lvl.Level() <= slog.LevelDebug)
	if err != nil {
		return nil, err
	}
	return finish(h, opts.SessionID), nil
}

// NewFromConfig builds the CLI logger: console or JSON lines on stderr and,
// when logging.dir is set, a JSON copy appended to mlinput.log there.
func NewFromConfig(cfg *config.Config, sessionID string) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{SessionID: sessionID})
	}
	lvl := levelVar(cfg.Logging.Level)
	withSource := lvl.Level() <= slog.LevelDebug

	console, err := newFormatHandler(cfg.Logging.Format, os.Stderr, lvl, withSource)
	if err != nil {
		return nil, err
	}
	handlers := []slog.Handler{console}
	if dir := strings.TrimSpace(cfg.Logging.Dir); dir != "" {
		w, err := openOutputs([]string{filepath.Join(dir, LogFileName)})
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, newJSONHandler(w, lvl, withSource))
	}
	return finish(newFanoutHandler(handlers...), sessionID), nil
}

func finish(h slog.Handler, sessionID string) *slog.Logger {
	if sessionID != "" {
		h = newSessionIDHandler(h, sessionID)
	}
	return slog.New(h)
}

func newFormatHandler(format string, w io.Writer, lvl *slog.LevelVar, addSource bool) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		return newPrettyHandler(w, lvl, addSource), nil
	case "json":
		return newJSONHandler(w, lvl, addSource), nil
	}
	return nil, fmt.Errorf("log format: unsupported value %q", format)
}

func levelVar(name string) *slog.LevelVar {
	lvl := new(slog.LevelVar)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		lvl.Set(slog.LevelDebug)
	case "warn":
		lvl.Set(slog.LevelWarn)
	case "error":
		lvl.Set(slog.LevelError)
	default:
		lvl.Set(slog.LevelInfo)
	}
	return lvl
}

// openOutputs resolves output names to one writer. Files are created with
// their parent directories and opened for appending; duplicates are ignored.
func openOutputs(paths []string) (io.Writer, error) {
	var writers []io.Writer
	seen := make(map[string]bool)
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		switch p {
		case "stderr":
			writers = append(writers, os.Stderr)
		case "stdout":
			writers = append(writers, os.Stdout)
		default:
			if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
			f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", p, err)
			}
			writers = append(writers, f)
		}
	}
	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}
