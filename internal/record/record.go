package record

import (
	"fmt"
	"strings"
)

// Entry is one language value in display order.
type Entry struct {
	Code string
	Text string
}

// Record is a set of per-language text values with a fixed default language.
// A Record is not safe for concurrent mutation; callers that share one across
// goroutines must Clone it or synchronize access.
type Record struct {
	defaultLanguage string
	values          map[string]string
	order           []string
}

// New creates a record whose default language value starts empty.
func New(defaultLanguage string) (*Record, error) {
	code, err := normalizeCode(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("default language: %w", err)
	}
	return &Record{
		defaultLanguage: code,
		values:          map[string]string{code: ""},
		order:           []string{code},
	}, nil
}

// MustNew is New for literal codes; it panics on an invalid code.
func MustNew(defaultLanguage string) *Record {
	r, err := New(defaultLanguage)
	if err != nil {
		panic(err)
	}
	return r
}

// FromEntries builds a record from a default language and ordered entries.
// Entries repeating a code overwrite the earlier value.
func FromEntries(defaultLanguage string, entries []Entry) (*Record, error) {
	r, err := New(defaultLanguage)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := r.Set(e.Code, e.Text); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultLanguage returns the canonical default language code.
func (r *Record) DefaultLanguage() string {
	return r.defaultLanguage
}

// Get returns the stored text for code, or "" when absent.
func (r *Record) Get(code string) string {
	return r.values[CanonicalCode(code)]
}

// Has reports whether code has an entry, even an empty one.
func (r *Record) Has(code string) bool {
	_, ok := r.values[CanonicalCode(code)]
	return ok
}

// Set stores text under code, adding the code at the end of the order when new.
func (r *Record) Set(code, text string) error {
	canonical, err := normalizeCode(code)
	if err != nil {
		return fmt.Errorf("set %q: %w", code, err)
	}
	if _, ok := r.values[canonical]; !ok {
		r.order = append(r.order, canonical)
	}
	r.values[canonical] = text
	return nil
}

// Remove deletes the entry for code. Removing an absent code is a no-op.
func (r *Record) Remove(code string) error {
	canonical := CanonicalCode(code)
	if canonical == r.defaultLanguage {
		return fmt.Errorf("remove %q: %w", code, ErrCannotRemoveDefault)
	}
	if _, ok := r.values[canonical]; !ok {
		return nil
	}
	delete(r.values, canonical)
	for i, c := range r.order {
		if c == canonical {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Entries returns the values with the default language first, then the
// remaining codes in insertion order.
func (r *Record) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	entries = append(entries, Entry{Code: r.defaultLanguage, Text: r.values[r.defaultLanguage]})
	for _, code := range r.order {
		if code == r.defaultLanguage {
			continue
		}
		entries = append(entries, Entry{Code: code, Text: r.values[code]})
	}
	return entries
}

// Len returns the number of entries including the default language.
func (r *Record) Len() int {
	return len(r.order)
}

// Clone returns an independent copy.
func (r *Record) Clone() *Record {
	clone := &Record{
		defaultLanguage: r.defaultLanguage,
		values:          make(map[string]string, len(r.values)),
		order:           make([]string, len(r.order)),
	}
	for k, v := range r.values {
		clone.values[k] = v
	}
	copy(clone.order, r.order)
	return clone
}

// Equal reports whether both records hold the same default language and the
// same entries in the same order.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.defaultLanguage != other.defaultLanguage || len(r.order) != len(other.order) {
		return false
	}
	a, b := r.Entries(), other.Entries()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CanonicalCode returns the stored form of a code: trimmed and lowercased.
func CanonicalCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// ValidateCode checks that code is a usable language code: letters, digits
// and hyphen-separated subtags, starting with a letter.
func ValidateCode(code string) error {
	_, err := normalizeCode(code)
	return err
}

func normalizeCode(code string) (string, error) {
	canonical := CanonicalCode(code)
	if canonical == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidLanguageCode)
	}
	for _, subtag := range strings.Split(canonical, "-") {
		if subtag == "" {
			return "", fmt.Errorf("%w: %q has an empty subtag", ErrInvalidLanguageCode, code)
		}
		for _, r := range subtag {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
				return "", fmt.Errorf("%w: %q contains %q", ErrInvalidLanguageCode, code, r)
			}
		}
	}
	if first := canonical[0]; first < 'a' || first > 'z' {
		return "", fmt.Errorf("%w: %q must start with a letter", ErrInvalidLanguageCode, code)
	}
	return canonical, nil
}
