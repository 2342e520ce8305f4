package merge

import (
	"fmt"
	"strings"

	"mlinput/internal/clipboard"
	"mlinput/internal/record"
)

// Mode selects how a pasted row combines with an existing value.
type Mode int

const (
	// Overwrite replaces existing values.
	Overwrite Mode = iota
	// Append joins pasted text to existing values with a single space.
	Append
	// Ask defers the choice to a Decider at paste time.
	Ask
)

func (m Mode) String() string {
	switch m {
	case Append:
		return "append"
	case Ask:
		return "ask"
	default:
		return "overwrite"
	}
}

// ParseMode converts a config or flag value into a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "overwrite", "replace":
		return Overwrite, nil
	case "append", "add":
		return Append, nil
	case "ask", "":
		return Ask, nil
	default:
		return Overwrite, fmt.Errorf("merge mode: unsupported value %q", value)
	}
}

// Skipped is a pasted row that could not be applied.
type Skipped struct {
	Entry clipboard.Entry
	Err   error
}

// Result is the outcome of a merge.
type Result struct {
	Record  *record.Record
	Applied int
	Skipped []Skipped
}

// Merge applies entries to a copy of current. Rows with malformed codes are
// reported in Result.Skipped and do not stop the merge. Ask is treated as
// Overwrite; resolve it with a Decider first.
func Merge(current *record.Record, entries []clipboard.Entry, mode Mode) Result {
	working := current.Clone()
	res := Result{Record: working}
	for _, e := range entries {
		if err := record.ValidateCode(e.Code); err != nil {
			res.Skipped = append(res.Skipped, Skipped{Entry: e, Err: err})
			continue
		}
		value := e.Text
		if mode == Append && working.Has(e.Code) {
			value = working.Get(e.Code) + " " + e.Text
		}
		if err := working.Set(e.Code, value); err != nil {
			res.Skipped = append(res.Skipped, Skipped{Entry: e, Err: err})
			continue
		}
		res.Applied++
	}
	return res
}
