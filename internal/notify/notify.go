// Package notify defines the outward effects of the multilingual editor.
//
// The editor never mutates shared state itself. Every change is computed
// first and then handed to exactly one of three effects: a single field
// edit, a whole-record replacement after a bulk paste, or the deletion of
// one language.
package notify

import (
	"log/slog"

	"mlinput/internal/logging"
	"mlinput/internal/record"
)

// Notifier receives editor changes. Implementations must not retain the
// record passed to OnBulkReplace beyond the call unless they own it; the
// editor hands over a fresh copy each time.
type Notifier interface {
	OnSingleChange(code, text string)
	OnBulkReplace(r *record.Record)
	OnDelete(code string)
}

// Funcs adapts plain functions to Notifier. Nil fields are skipped.
type Funcs struct {
	SingleChange func(code, text string)
	BulkReplace  func(r *record.Record)
	Delete       func(code string)
}

// OnSingleChange calls SingleChange when set.
func (f Funcs) OnSingleChange(code, text string) {
	if f.SingleChange != nil {
		f.SingleChange(code, text)
	}
}

// OnBulkReplace calls BulkReplace when set.
func (f Funcs) OnBulkReplace(r *record.Record) {
	if f.BulkReplace != nil {
		f.BulkReplace(r)
	}
}

// OnDelete calls Delete when set.
func (f Funcs) OnDelete(code string) {
	if f.Delete != nil {
		f.Delete(code)
	}
}

// Nop ignores every effect.
var Nop Notifier = Funcs{}

type fanout []Notifier

// Fanout dispatches each effect to every non-nil notifier in order.
func Fanout(notifiers ...Notifier) Notifier {
	out := make(fanout, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func (f fanout) OnSingleChange(code, text string) {
	for _, n := range f {
		n.OnSingleChange(code, text)
	}
}

func (f fanout) OnBulkReplace(r *record.Record) {
	for _, n := range f {
		n.OnBulkReplace(r)
	}
}

func (f fanout) OnDelete(code string) {
	for _, n := range f {
		n.OnDelete(code)
	}
}

type loggingNotifier struct {
	logger *slog.Logger
}

// NewLogging returns a Notifier that records every effect at debug level.
func NewLogging(logger *slog.Logger) Notifier {
	return loggingNotifier{logger: logging.NewComponentLogger(logger, "notify")}
}

func (l loggingNotifier) OnSingleChange(code, text string) {
	l.logger.Debug("value changed", logging.String(logging.FieldCode, code), logging.Int("length", len([]rune(text))))
}

func (l loggingNotifier) OnBulkReplace(r *record.Record) {
	l.logger.Debug("record replaced",
		logging.String(logging.FieldDefaultLanguage, r.DefaultLanguage()),
		logging.Int("entries", r.Len()),
	)
}

func (l loggingNotifier) OnDelete(code string) {
	l.logger.Debug("value deleted", logging.String(logging.FieldCode, code))
}
