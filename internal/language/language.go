package language

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	xlanguage "golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"fa", "fas", "per", "Persian", []string{"persian", "farsi"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"es", "spa", "", "Spanish", []string{"spanish"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"uk", "ukr", "", "Ukrainian", []string{"ukrainian"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"tr", "tur", "", "Turkish", []string{"turkish"}},
	{"he", "heb", "", "Hebrew", []string{"hebrew"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"ur", "urd", "", "Urdu", []string{"urdu"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
	{"el", "ell", "gre", "Greek", []string{"greek"}},
	{"cs", "ces", "cze", "Czech", []string{"czech"}},
	{"hu", "hun", "", "Hungarian", []string{"hungarian"}},
	{"ro", "ron", "rum", "Romanian", []string{"romanian"}},
	{"ku", "kur", "", "Kurdish", []string{"kurdish"}},
	{"ps", "pus", "", "Pashto", []string{"pashto"}},
}

// Option is one selectable language in the "add language" picker.
type Option struct {
	Code string
	Name string
}

// Catalog maps language codes to display names. A Catalog is immutable once
// built and safe for concurrent readers.
type Catalog struct {
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
	entries []*entry
}

var defaultCatalog = NewCatalog(nil)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from the built-in table plus extra code → name
// pairs. Extra names override built-in names for the same code.
func NewCatalog(extra map[string]string) *Catalog {
	c := &Catalog{
		byCode2: make(map[string]*entry, len(languages)+len(extra)),
		byCode3: make(map[string]*entry, len(languages)*2),
		byWord:  make(map[string]*entry, len(languages)),
	}
	for i := range languages {
		e := languages[i]
		c.add(&e)
	}

	codes := make([]string, 0, len(extra))
	for code := range extra {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		key := strings.ToLower(strings.TrimSpace(code))
		name := strings.TrimSpace(extra[code])
		if key == "" || name == "" {
			continue
		}
		if existing, ok := c.byCode2[key]; ok {
			overridden := *existing
			overridden.display = name
			c.replace(existing, &overridden)
			continue
		}
		c.add(&entry{code2: key, display: name})
	}
	return c
}

func (c *Catalog) add(e *entry) {
	c.entries = append(c.entries, e)
	c.byCode2[e.code2] = e
	if e.code3 != "" {
		c.byCode3[e.code3] = e
	}
	if e.alt3 != "" {
		c.byCode3[e.alt3] = e
	}
	for _, w := range e.words {
		c.byWord[w] = e
	}
}

func (c *Catalog) replace(old, next *entry) {
	for i, e := range c.entries {
		if e == old {
			c.entries[i] = next
		}
	}
	c.byCode2[next.code2] = next
	if next.code3 != "" {
		c.byCode3[next.code3] = next
	}
	if next.alt3 != "" {
		c.byCode3[next.alt3] = next
	}
	for _, w := range next.words {
		c.byWord[w] = next
	}
}

func (c *Catalog) lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := c.byCode2[code]; ok {
		return e
	}
	if e, ok := c.byCode3[code]; ok {
		return e
	}
	if e, ok := c.byWord[code]; ok {
		return e
	}
	if !strings.Contains(code, "-") {
		return nil
	}
	tag, err := xlanguage.Parse(code)
	if err != nil {
		return nil
	}
	base, _ := tag.Base()
	if e, ok := c.byCode2[base.String()]; ok {
		return e
	}
	if e, ok := c.byCode3[base.ISO3()]; ok {
		return e
	}
	return nil
}

// NameOf returns the display name for code. The boolean is false for codes
// the catalog does not know.
func (c *Catalog) NameOf(code string) (string, bool) {
	if e := c.lookup(code); e != nil {
		return e.display, true
	}
	return "", false
}

// DisplayName returns the name for code, or the trimmed raw code when the
// catalog does not know it.
func (c *Catalog) DisplayName(code string) string {
	if name, ok := c.NameOf(code); ok {
		return name
	}
	return strings.TrimSpace(code)
}

// Label renders "<Name> (<CODE>)", e.g. "Persian (FA)".
func (c *Catalog) Label(code string) string {
	return c.DisplayName(code) + " (" + Abbreviation(code) + ")"
}

// Options lists every catalog language sorted by display name.
func (c *Catalog) Options() []Option {
	opts := make([]Option, 0, len(c.entries))
	for _, e := range c.entries {
		opts = append(opts, Option{Code: e.code2, Name: e.display})
	}
	col := collate.New(xlanguage.English, collate.IgnoreCase)
	sort.SliceStable(opts, func(i, j int) bool {
		return col.CompareString(opts[i].Name, opts[j].Name) < 0
	})
	return opts
}

// ToISO2 converts a recognized language code or word to its 2-letter code.
// Returns empty string for unrecognized input. A 2-letter input passes
// through even if unknown.
func (c *Catalog) ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := c.lookup(code); e != nil && !strings.Contains(code, "-") {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// Abbreviation returns the uppercase display form of a code ("fa" → "FA").
func Abbreviation(code string) string {
	return cases.Upper(xlanguage.Und).String(strings.TrimSpace(code))
}

// NameOf looks code up in the default catalog.
func NameOf(code string) (string, bool) {
	return defaultCatalog.NameOf(code)
}

// DisplayName returns the default catalog's name for code, falling back to
// the raw code.
func DisplayName(code string) string {
	return defaultCatalog.DisplayName(code)
}

// Label renders code using the default catalog.
func Label(code string) string {
	return defaultCatalog.Label(code)
}

// ToISO2 converts code using the default catalog.
func ToISO2(code string) string {
	return defaultCatalog.ToISO2(code)
}
