package editor

import "errors"

var (
	// ErrReadOnly reports a mutation attempted on a read-only editor.
	ErrReadOnly = errors.New("editor is read-only")
	// ErrLengthOutOfRange reports text outside the advisory length bounds.
	ErrLengthOutOfRange = errors.New("text length out of range")
	// ErrModalClosed reports a modal action while the modal is hidden.
	ErrModalClosed = errors.New("add-language dialog is not open")
)
