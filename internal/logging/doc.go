// Package logging assembles structured slog loggers and formatting helpers used
// across mlinput.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so editor and CLI code tag log lines
// with the same keys (component, language code, merge mode, session). The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
