package merge

import (
	"errors"
	"testing"

	"mlinput/internal/clipboard"
	"mlinput/internal/record"
)

func TestFixed(t *testing.T) {
	r := record.MustNew("en")
	for _, tt := range []struct {
		in, want Mode
	}{
		{Append, Append},
		{Overwrite, Overwrite},
		{Ask, Overwrite},
	} {
		got, err := Fixed(tt.in).Decide(r, nil)
		if err != nil || got != tt.want {
			t.Errorf("Fixed(%v).Decide() = (%v, %v), want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestConfirm(t *testing.T) {
	r := record.MustNew("en")

	yes := Confirm(func() (bool, error) { return true, nil })
	if mode, _ := yes.Decide(r, nil); mode != Append {
		t.Fatalf("accepted prompt = %v, want append", mode)
	}

	no := Confirm(func() (bool, error) { return false, nil })
	if mode, _ := no.Decide(r, nil); mode != Overwrite {
		t.Fatalf("declined prompt = %v, want overwrite", mode)
	}

	boom := errors.New("no tty")
	failed := Confirm(func() (bool, error) { return true, boom })
	mode, err := failed.Decide(r, nil)
	if mode != Overwrite || !errors.Is(err, boom) {
		t.Fatalf("failed prompt = (%v, %v), want overwrite with error", mode, err)
	}
}

func TestOverlaps(t *testing.T) {
	r := record.MustNew("en")
	_ = r.Set("fa", "سلام")

	if Overlaps(r, []clipboard.Entry{{Code: "en", Text: "x"}}) {
		t.Fatal("empty default value should not count as overlap")
	}
	if !Overlaps(r, []clipboard.Entry{{Code: "de", Text: "x"}, {Code: "FA", Text: "y"}}) {
		t.Fatal("expected overlap on fa")
	}
}
