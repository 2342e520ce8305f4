package clipboard

import (
	"errors"
	"regexp"
	"strings"

	"mlinput/internal/record"
)

// ErrNotBulkData signals that pasted text is ordinary input rather than
// language rows and should be inserted into the focused field unchanged.
var ErrNotBulkData = errors.New("clipboard text is not bulk language data")

// The separator is any run of horizontal whitespace, including form feed,
// vertical tab and Unicode space separators such as NBSP. Line breaks never
// appear inside a scanned line.
var (
	linePattern       = regexp.MustCompile(`^([A-Za-z-]+)[\t\f\v \p{Zs}\x{FEFF}]+(.+)$`)
	strictLinePattern = regexp.MustCompile(`^([A-Za-z-]+)\t+(.+)$`)
)

// Entry is one parsed row. Code is exactly as captured; it has not been
// canonicalized or checked against the language catalog.
type Entry struct {
	Code string
	Text string
}

// Codec serializes and parses clipboard rows. The zero value accepts tabs
// or spaces between code and value.
type Codec struct {
	// StrictSeparator only recognizes rows whose code is followed by tabs.
	// Otherwise any horizontal whitespace separates code and value.
	StrictSeparator bool
}

// Format renders r as tab-separated rows, default language first.
func (c Codec) Format(r *record.Record) string {
	var b strings.Builder
	for _, e := range r.Entries() {
		b.WriteString(e.Code)
		b.WriteByte('\t')
		b.WriteString(e.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse returns every recognized row of raw in input order. It never fails;
// an empty result means raw is not bulk language data.
func (c Codec) Parse(raw string) []Entry {
	var entries []Entry
	c.scan(raw, func(code, text string) bool {
		entries = append(entries, Entry{Code: code, Text: text})
		return true
	})
	return entries
}

// Detect reports whether at least one line of raw is a recognizable row.
func (c Codec) Detect(raw string) bool {
	found := false
	c.scan(raw, func(string, string) bool {
		found = true
		return false
	})
	return found
}

func (c Codec) pattern() *regexp.Regexp {
	if c.StrictSeparator {
		return strictLinePattern
	}
	return linePattern
}

// scan calls fn for every matching terminated line until fn returns false.
// A trailing line without a terminator is never a row.
func (c Codec) scan(raw string, fn func(code, text string) bool) {
	pattern := c.pattern()
	for {
		idx := strings.IndexAny(raw, "\r\n")
		if idx < 0 {
			return
		}
		line := raw[:idx]
		if raw[idx] == '\r' && idx+1 < len(raw) && raw[idx+1] == '\n' {
			raw = raw[idx+2:]
		} else {
			raw = raw[idx+1:]
		}
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if !fn(m[1], m[2]) {
			return
		}
	}
}

var defaultCodec Codec

// Format renders r with the default codec.
func Format(r *record.Record) string {
	return defaultCodec.Format(r)
}

// Parse parses raw with the default codec.
func Parse(raw string) []Entry {
	return defaultCodec.Parse(raw)
}

// Detect checks raw with the default codec.
func Detect(raw string) bool {
	return defaultCodec.Detect(raw)
}
