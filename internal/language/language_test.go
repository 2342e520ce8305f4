package language

import (
	"testing"
)

func TestNameOf(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"en", "English", true},
		{"EN", "English", true},
		{"fa", "Persian", true},
		{"fas", "Persian", true},
		{"per", "Persian", true},
		{"farsi", "Persian", true},
		{"fre", "French", true},
		{"en-US", "English", true},
		{"zh-Hant", "Chinese", true},
		{"xx", "", false},
		{"xx-YY", "", false},
		{"", "", false},
		{" ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, ok := NameOf(tt.input)
			if name != tt.expected || ok != tt.ok {
				t.Errorf("NameOf(%q) = (%q, %v), want (%q, %v)", tt.input, name, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestDisplayNameFallsBackToRawCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"de", "German"},
		{"xx", "xx"},
		{" xx ", "xx"},
		{"tlh", "tlh"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := DisplayName(tt.input)
			if result != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"fa", "Persian (FA)"},
		{"en", "English (EN)"},
		{"xx", "xx (XX)"},
		{"en-us", "English (EN-US)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Label(tt.input)
			if result != tt.expected {
				t.Errorf("Label(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"eng", "en"},
		{"persian", "fa"},
		{"GERMAN", "de"},
		{"xy", "xy"},
		{"xyz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToISO2(tt.input)
			if result != tt.expected {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewCatalogExtraNames(t *testing.T) {
	cat := NewCatalog(map[string]string{
		"XX": "Test Language",
		"fa": "Farsi",
		"":   "ignored",
		"yy": " ",
	})

	if name, ok := cat.NameOf("xx"); !ok || name != "Test Language" {
		t.Fatalf("NameOf(xx) = (%q, %v), want Test Language", name, ok)
	}
	if name, _ := cat.NameOf("fas"); name != "Farsi" {
		t.Fatalf("override not reachable through ISO 639-2 code, got %q", name)
	}
	if _, ok := cat.NameOf("yy"); ok {
		t.Fatal("blank names should not be registered")
	}
	if name, _ := NameOf("fa"); name != "Persian" {
		t.Fatalf("default catalog mutated: fa = %q", name)
	}
	if _, ok := NameOf("xx"); ok {
		t.Fatal("default catalog gained extra code")
	}
}

func TestOptionsSortedByName(t *testing.T) {
	opts := NewCatalog(map[string]string{"aa": "afar"}).Options()
	if len(opts) != len(languages)+1 {
		t.Fatalf("Options() returned %d entries, want %d", len(opts), len(languages)+1)
	}
	if opts[0].Code != "aa" {
		t.Fatalf("expected case-insensitive sort to put afar first, got %+v", opts[0])
	}
	for i := 1; i < len(opts); i++ {
		if opts[i-1].Name > opts[i].Name && opts[i-1].Code != "aa" {
			t.Fatalf("options out of order at %d: %q before %q", i, opts[i-1].Name, opts[i].Name)
		}
	}
}
