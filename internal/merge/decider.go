package merge

import (
	"mlinput/internal/clipboard"
	"mlinput/internal/record"
)

// Decider chooses Append or Overwrite for a paste. It replaces the blocking
// "add to the existing values?" confirmation.
type Decider interface {
	Decide(current *record.Record, entries []clipboard.Entry) (Mode, error)
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(current *record.Record, entries []clipboard.Entry) (Mode, error)

// Decide calls f.
func (f DeciderFunc) Decide(current *record.Record, entries []clipboard.Entry) (Mode, error) {
	return f(current, entries)
}

// Fixed returns a Decider that always answers mode. Ask resolves to Overwrite.
func Fixed(mode Mode) Decider {
	if mode == Ask {
		mode = Overwrite
	}
	return DeciderFunc(func(*record.Record, []clipboard.Entry) (Mode, error) {
		return mode, nil
	})
}

// Confirm adapts a yes/no prompt: true means Append, false or an error means
// Overwrite. A declined or failed prompt still merges.
func Confirm(ask func() (bool, error)) Decider {
	return DeciderFunc(func(*record.Record, []clipboard.Entry) (Mode, error) {
		ok, err := ask()
		if err != nil || !ok {
			return Overwrite, err
		}
		return Append, nil
	})
}

// Overlaps reports whether any entry targets a code current already holds
// with non-empty text. When nothing overlaps, Append and Overwrite differ
// only for empty values.
func Overlaps(current *record.Record, entries []clipboard.Entry) bool {
	for _, e := range entries {
		if current.Get(e.Code) != "" {
			return true
		}
	}
	return false
}
