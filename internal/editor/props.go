package editor

import (
	"fmt"
	"unicode/utf8"
)

// Props are the presentation settings a host applies to every value field.
// MinLength and MaxLength are advisory: the editor reports violations but
// still accepts the text.
type Props struct {
	ReadOnly  bool
	MinLength int
	MaxLength int
}

// DefaultProps returns a fresh Props value with the stock bounds.
func DefaultProps() Props {
	return Props{MinLength: 0, MaxLength: 100}
}

// CheckLength reports whether text fits the advisory bounds, counting
// characters rather than bytes. A MaxLength of zero disables the upper bound.
func (p Props) CheckLength(text string) error {
	n := utf8.RuneCountInString(text)
	if n < p.MinLength {
		return fmt.Errorf("%w: %d < min %d", ErrLengthOutOfRange, n, p.MinLength)
	}
	if p.MaxLength > 0 && n > p.MaxLength {
		return fmt.Errorf("%w: %d > max %d", ErrLengthOutOfRange, n, p.MaxLength)
	}
	return nil
}
