package editor

import (
	"sync"

	"mlinput/internal/language"
)

// Modal is the add-language dialog owned by one Editor.
type Modal struct {
	mu      sync.Mutex
	visible bool
	code    string
	text    string
	options []language.Option

	preselect func() string
	submit    func(code, text string) error
}

func newModal(options []language.Option, preselect func() string, submit func(code, text string) error) *Modal {
	return &Modal{options: options, preselect: preselect, submit: submit}
}

// Visible reports whether the dialog is shown.
func (m *Modal) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

// Options returns the selectable languages.
func (m *Modal) Options() []language.Option {
	return append([]language.Option(nil), m.options...)
}

// Selection returns the chosen code and entered text.
func (m *Modal) Selection() (code, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code, m.text
}

// Open shows the dialog, preselecting the first language the record does not
// have yet. Opening a visible dialog keeps its input.
func (m *Modal) Open() {
	preselected := ""
	if m.preselect != nil {
		preselected = m.preselect()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.visible {
		return
	}
	m.visible = true
	m.code = preselected
	m.text = ""
}

// SelectLanguage chooses the language for the new value.
func (m *Modal) SelectLanguage(code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.visible {
		return ErrModalClosed
	}
	m.code = code
	return nil
}

// SetText sets the value to add.
func (m *Modal) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.visible {
		return ErrModalClosed
	}
	m.text = text
	return nil
}

// Submit adds the entered value through the editor and closes the dialog.
// On error the dialog stays open so the input can be corrected.
func (m *Modal) Submit() error {
	m.mu.Lock()
	if !m.visible {
		m.mu.Unlock()
		return ErrModalClosed
	}
	code, text := m.code, m.text
	m.mu.Unlock()

	if err := m.submit(code, text); err != nil {
		return err
	}
	m.Cancel()
	return nil
}

// Cancel hides the dialog and discards its input.
func (m *Modal) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = false
	m.code = ""
	m.text = ""
}
