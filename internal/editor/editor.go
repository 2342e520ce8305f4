package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mlinput/internal/clipboard"
	"mlinput/internal/language"
	"mlinput/internal/logging"
	"mlinput/internal/merge"
	"mlinput/internal/notify"
	"mlinput/internal/record"
)

// DefaultCollapseDelay is how long extra languages stay visible after focus
// leaves the editor.
const DefaultCollapseDelay = 200 * time.Millisecond

// Key identifies a keyboard key forwarded by the host.
type Key int

// KeyInsert opens the add-language dialog.
const KeyInsert Key = 45

// Row is one rendered language field.
type Row struct {
	Code      string
	Label     string
	Value     string
	Default   bool
	ReadOnly  bool
	MinLength int
	MaxLength int
}

// PasteResult describes how a paste was handled.
type PasteResult struct {
	// Handled is false when the text was not bulk language data.
	Handled bool
	Mode    merge.Mode
	Applied int
	Skipped []merge.Skipped
	Record  *record.Record
}

// Option customizes an Editor.
type Option func(*Editor)

// WithProps sets the field props.
func WithProps(p Props) Option {
	return func(e *Editor) { e.props = p }
}

// WithDecider sets how a paste chooses between append and overwrite.
func WithDecider(d merge.Decider) Option {
	return func(e *Editor) {
		if d != nil {
			e.decider = d
		}
	}
}

// WithClock replaces the clock driving the collapse timer.
func WithClock(c Clock) Option {
	return func(e *Editor) { e.clock = c }
}

// WithCollapseDelay sets the delay between focus out and collapse.
func WithCollapseDelay(d time.Duration) Option {
	return func(e *Editor) { e.delay = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// WithCodec sets the clipboard codec.
func WithCodec(c clipboard.Codec) Option {
	return func(e *Editor) { e.codec = c }
}

// WithCatalog sets the language catalog used for labels and dialog options.
func WithCatalog(c *language.Catalog) Option {
	return func(e *Editor) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithStateHook registers a callback for expand/collapse changes, typically a
// host re-render.
func WithStateHook(fn func(State)) Option {
	return func(e *Editor) { e.onState = fn }
}

// Editor drives one multilingual input. All methods are safe for concurrent
// use; a paste is applied atomically with respect to other edits and the
// collapse timer.
type Editor struct {
	mu       sync.Mutex
	rec      *record.Record
	notifier notify.Notifier
	props    Props
	decider  merge.Decider
	codec    clipboard.Codec
	catalog  *language.Catalog
	logger   *slog.Logger
	clock    Clock
	delay    time.Duration
	onState  func(State)
	expander *Expander
	modal    *Modal
}

// New builds an editor over a private copy of rec.
func New(rec *record.Record, notifier notify.Notifier, opts ...Option) (*Editor, error) {
	if rec == nil {
		return nil, errors.New("editor: record is required")
	}
	if notifier == nil {
		notifier = notify.Nop
	}
	e := &Editor{
		rec:      rec.Clone(),
		notifier: notifier,
		props:    DefaultProps(),
		decider:  merge.Fixed(merge.Overwrite),
		catalog:  language.Default(),
		delay:    DefaultCollapseDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "editor")
	e.expander = NewExpander(e.clock, e.delay, e.onState)
	e.modal = newModal(e.catalog.Options(), e.firstMissingLanguage, e.Change)
	return e, nil
}

// Close stops the collapse timer.
func (e *Editor) Close() {
	e.expander.Close()
}

// Record returns a copy of the current values.
func (e *Editor) Record() *record.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec.Clone()
}

// SetRecord replaces the values from the host side without notifying.
func (e *Editor) SetRecord(rec *record.Record) {
	if rec == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rec = rec.Clone()
}

// Props returns the field props.
func (e *Editor) Props() Props {
	return e.props
}

// Modal returns the editor's add-language dialog.
func (e *Editor) Modal() *Modal {
	return e.modal
}

// State returns the expand state.
func (e *Editor) State() State {
	return e.expander.State()
}

// FocusIn handles a field gaining focus.
func (e *Editor) FocusIn() {
	e.expander.FocusIn()
}

// FocusOut handles a field losing focus.
func (e *Editor) FocusOut() {
	e.expander.FocusOut()
}

// HandleKey reacts to a key press in a value field. It reports whether the
// key was consumed.
func (e *Editor) HandleKey(k Key) bool {
	if k != KeyInsert {
		return false
	}
	e.modal.Open()
	return true
}

func (e *Editor) firstMissingLanguage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, opt := range e.modal.Options() {
		if !e.rec.Has(opt.Code) {
			return opt.Code
		}
	}
	return ""
}

// Change updates a single language value and emits OnSingleChange.
func (e *Editor) Change(code, text string) error {
	if e.props.ReadOnly {
		return ErrReadOnly
	}
	e.mu.Lock()
	next := e.rec.Clone()
	if err := next.Set(code, text); err != nil {
		e.mu.Unlock()
		return err
	}
	e.rec = next
	canonical := record.CanonicalCode(code)
	e.mu.Unlock()

	if err := e.props.CheckLength(text); err != nil {
		e.logger.Debug("value outside advisory length",
			logging.String(logging.FieldCode, canonical),
			logging.Error(err),
		)
	}
	e.notifier.OnSingleChange(canonical, text)
	return nil
}

// Delete removes a non-default language and emits OnDelete.
func (e *Editor) Delete(code string) error {
	if e.props.ReadOnly {
		return ErrReadOnly
	}
	e.mu.Lock()
	next := e.rec.Clone()
	if err := next.Remove(code); err != nil {
		e.mu.Unlock()
		return err
	}
	e.rec = next
	e.mu.Unlock()

	e.notifier.OnDelete(record.CanonicalCode(code))
	return nil
}

// HandleCopy returns the text to put on the clipboard. When the user has a
// selection, intercept is false and the host keeps its default copy.
func (e *Editor) HandleCopy(selection string) (text string, intercept bool) {
	if selection != "" {
		return "", false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.codec.Format(e.rec), true
}

// HandlePaste merges bulk language rows from raw into the record and emits
// OnBulkReplace when at least one row was applied. Text without any row returns clipboard.ErrNotBulkData with
// Handled false; the host then inserts it into the focused field.
// The Decider runs while the editor is locked and must not call back into it.
func (e *Editor) HandlePaste(raw string) (PasteResult, error) {
	if !e.codec.Detect(raw) {
		return PasteResult{}, clipboard.ErrNotBulkData
	}
	if e.props.ReadOnly {
		return PasteResult{Handled: true}, ErrReadOnly
	}
	entries := e.codec.Parse(raw)

	e.mu.Lock()
	current := e.rec
	mode := e.decide(current, entries)
	res := merge.Merge(current, entries, mode)
	e.rec = res.Record
	replaced := res.Record.Clone()
	e.mu.Unlock()

	for _, s := range res.Skipped {
		logging.WarnWithContext(e.logger, "pasted row skipped", "paste_row_skipped",
			logging.String(logging.FieldCode, s.Entry.Code),
			logging.Error(s.Err),
			logging.String(logging.FieldImpact, "row not imported"),
			logging.String(logging.FieldErrorHint, "use a letter code such as en or pt-br"),
		)
	}
	e.logger.Info("paste merged",
		logging.String(logging.FieldMergeMode, mode.String()),
		logging.Int("applied", res.Applied),
		logging.Int("skipped", len(res.Skipped)),
	)

	if res.Applied > 0 {
		e.notifier.OnBulkReplace(replaced)
	}
	return PasteResult{
		Handled: true,
		Mode:    mode,
		Applied: res.Applied,
		Skipped: res.Skipped,
		Record:  replaced.Clone(),
	}, nil
}

func (e *Editor) decide(current *record.Record, entries []clipboard.Entry) merge.Mode {
	mode, err := e.decider.Decide(current.Clone(), entries)
	reason := "decider"
	if err != nil {
		mode = merge.Overwrite
		reason = fmt.Sprintf("decider failed: %v", err)
	}
	if mode == merge.Ask {
		mode = merge.Overwrite
		reason = "unresolved ask"
	}
	e.logger.Debug("merge mode decided", logging.Args(logging.DecisionAttrs("merge_mode", mode.String(), reason)...)...)
	return mode
}

// Rows lists the fields to render: the default language always, the others
// only while expanded.
func (e *Editor) Rows() []Row {
	expanded := e.expander.Expanded()
	e.mu.Lock()
	defer e.mu.Unlock()

	entries := e.rec.Entries()
	rows := make([]Row, 0, len(entries))
	for i, entry := range entries {
		isDefault := i == 0
		if !isDefault && !expanded {
			continue
		}
		rows = append(rows, Row{
			Code:      entry.Code,
			Label:     e.catalog.Label(entry.Code),
			Value:     entry.Text,
			Default:   isDefault,
			ReadOnly:  e.props.ReadOnly,
			MinLength: e.props.MinLength,
			MaxLength: e.props.MaxLength,
		})
	}
	return rows
}

// AllRows lists every field regardless of expand state.
func (e *Editor) AllRows() []Row {
	e.mu.Lock()
	defer e.mu.Unlock()
	entries := e.rec.Entries()
	rows := make([]Row, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, Row{
			Code:      entry.Code,
			Label:     e.catalog.Label(entry.Code),
			Value:     entry.Text,
			Default:   i == 0,
			ReadOnly:  e.props.ReadOnly,
			MinLength: e.props.MinLength,
			MaxLength: e.props.MaxLength,
		})
	}
	return rows
}
