package merge

import (
	"errors"
	"reflect"
	"testing"

	"mlinput/internal/clipboard"
	"mlinput/internal/record"
)

func recordWith(t *testing.T, def string, entries ...record.Entry) *record.Record {
	t.Helper()
	r, err := record.FromEntries(def, entries)
	if err != nil {
		t.Fatalf("FromEntries: %v", err)
	}
	return r
}

func TestMergeAppend(t *testing.T) {
	current := recordWith(t, "en", record.Entry{Code: "en", Text: "Hi"})
	res := Merge(current, []clipboard.Entry{{Code: "en", Text: "There"}}, Append)
	if got := res.Record.Get("en"); got != "Hi There" {
		t.Fatalf("en = %q, want %q", got, "Hi There")
	}
	if res.Applied != 1 || len(res.Skipped) != 0 {
		t.Fatalf("unexpected counts: applied=%d skipped=%v", res.Applied, res.Skipped)
	}
}

func TestMergeOverwrite(t *testing.T) {
	current := recordWith(t, "en", record.Entry{Code: "en", Text: "Hi"})
	res := Merge(current, []clipboard.Entry{{Code: "en", Text: "There"}}, Overwrite)
	if got := res.Record.Get("en"); got != "There" {
		t.Fatalf("en = %q, want There", got)
	}
}

func TestMergeDoesNotMutateCurrent(t *testing.T) {
	current := recordWith(t, "en", record.Entry{Code: "en", Text: "Hi"})
	before := current.Clone()
	res := Merge(current, []clipboard.Entry{{Code: "en", Text: "There"}, {Code: "fa", Text: "سلام"}}, Append)
	if !current.Equal(before) {
		t.Fatalf("current mutated: %v", current.Entries())
	}
	if res.Record == current {
		t.Fatal("expected merge to return a new record")
	}
}

func TestMergeLaterRowsBuildOnEarlier(t *testing.T) {
	current := recordWith(t, "en", record.Entry{Code: "en", Text: "a"})
	rows := []clipboard.Entry{{Code: "en", Text: "b"}, {Code: "EN", Text: "c"}}

	if got := Merge(current, rows, Append).Record.Get("en"); got != "a b c" {
		t.Fatalf("append: en = %q, want %q", got, "a b c")
	}
	if got := Merge(current, rows, Overwrite).Record.Get("en"); got != "c" {
		t.Fatalf("overwrite: en = %q, want c", got)
	}
}

func TestMergeAppendToNewCodeSetsValue(t *testing.T) {
	current := recordWith(t, "en")
	res := Merge(current, []clipboard.Entry{{Code: "de", Text: "Hallo"}}, Append)
	if got := res.Record.Get("de"); got != "Hallo" {
		t.Fatalf("de = %q, want Hallo", got)
	}
}

func TestMergeAppendToEmptyDefaultKeepsSeparator(t *testing.T) {
	current := recordWith(t, "en")
	res := Merge(current, []clipboard.Entry{{Code: "en", Text: "Hello"}}, Append)
	if got := res.Record.Get("en"); got != " Hello" {
		t.Fatalf("en = %q, want %q", got, " Hello")
	}
}

func TestMergeUnknownCodeIsStored(t *testing.T) {
	current := recordWith(t, "fa")
	res := Merge(current, []clipboard.Entry{{Code: "xx", Text: "value"}}, Overwrite)
	if got := res.Record.Get("xx"); got != "value" {
		t.Fatalf("xx = %q, want value", got)
	}
	want := []record.Entry{{Code: "fa", Text: ""}, {Code: "xx", Text: "value"}}
	if got := res.Record.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
}

func TestMergeSkipsMalformedCodes(t *testing.T) {
	current := recordWith(t, "en")
	rows := []clipboard.Entry{
		{Code: "-", Text: "dash"},
		{Code: "fr", Text: "Salut"},
		{Code: "en-", Text: "trailing"},
	}
	res := Merge(current, rows, Overwrite)
	if res.Applied != 1 {
		t.Fatalf("Applied = %d, want 1", res.Applied)
	}
	if len(res.Skipped) != 2 {
		t.Fatalf("Skipped = %v, want 2 entries", res.Skipped)
	}
	for _, s := range res.Skipped {
		if !errors.Is(s.Err, record.ErrInvalidLanguageCode) {
			t.Fatalf("skip error = %v, want ErrInvalidLanguageCode", s.Err)
		}
	}
	if res.Record.Get("fr") != "Salut" {
		t.Fatalf("valid row not applied: %v", res.Record.Entries())
	}
}

func TestMergeParsedClipboard(t *testing.T) {
	current := recordWith(t, "fa", record.Entry{Code: "fa", Text: "سلام"})
	rows := clipboard.Parse("EN\tHello\n####not a line\nfa\tدنیا\n")
	res := Merge(current, rows, Append)
	want := []record.Entry{{Code: "fa", Text: "سلام دنیا"}, {Code: "en", Text: "Hello"}}
	if got := res.Record.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"append", Append, false},
		{" Overwrite ", Overwrite, false},
		{"replace", Overwrite, false},
		{"ask", Ask, false},
		{"", Ask, false},
		{"sometimes", Overwrite, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
