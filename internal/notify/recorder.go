package notify

import (
	"sync"

	"mlinput/internal/record"
)

// Kind names a notifier effect.
type Kind string

const (
	KindSingleChange Kind = "change"
	KindBulkReplace  Kind = "replace"
	KindDelete       Kind = "delete"
)

// Event is one captured effect.
type Event struct {
	Kind   Kind
	Code   string
	Text   string
	Record *record.Record
}

// Recorder captures effects in order. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// OnSingleChange records a KindSingleChange event.
func (r *Recorder) OnSingleChange(code, text string) {
	r.append(Event{Kind: KindSingleChange, Code: code, Text: text})
}

// OnBulkReplace records a KindBulkReplace event holding a copy of rec.
func (r *Recorder) OnBulkReplace(rec *record.Record) {
	r.append(Event{Kind: KindBulkReplace, Record: rec.Clone()})
}

// OnDelete records a KindDelete event.
func (r *Recorder) OnDelete(code string) {
	r.append(Event{Kind: KindDelete, Code: code})
}

func (r *Recorder) append(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the captured effects.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Last returns the most recent effect.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// Apply replays the captured effects onto base and returns the result. It
// mirrors what a host does when it owns the record.
func (r *Recorder) Apply(base *record.Record) (*record.Record, error) {
	current := base.Clone()
	for _, e := range r.Events() {
		switch e.Kind {
		case KindSingleChange:
			if err := current.Set(e.Code, e.Text); err != nil {
				return nil, err
			}
		case KindBulkReplace:
			current = e.Record.Clone()
		case KindDelete:
			if err := current.Remove(e.Code); err != nil {
				return nil, err
			}
		}
	}
	return current, nil
}
