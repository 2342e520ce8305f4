package record

import "errors"

var (
	// ErrInvalidLanguageCode reports an empty or malformed language code.
	ErrInvalidLanguageCode = errors.New("invalid language code")
	// ErrCannotRemoveDefault reports an attempt to delete the default language.
	ErrCannotRemoveDefault = errors.New("cannot remove default language")
)
