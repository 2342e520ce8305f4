// Package sysclip moves clipboard text between the CLI and either the
// operating system clipboard or standard streams.
package sysclip

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// ErrUnavailable reports that no system clipboard utility is present.
var ErrUnavailable = errors.New("system clipboard is unavailable")

// Board reads and writes clipboard text.
type Board interface {
	Read() (string, error)
	Write(text string) error
}

// System is the operating system clipboard.
type System struct{}

func (System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	return text, nil
}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// Stream reads pasted text from In and writes copied text to Out.
type Stream struct {
	In  io.Reader
	Out io.Writer
}

func (s Stream) Read() (string, error) {
	if s.In == nil {
		return "", errors.New("no input stream")
	}
	data, err := io.ReadAll(s.In)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func (s Stream) Write(text string) error {
	if s.Out == nil {
		return errors.New("no output stream")
	}
	_, err := io.WriteString(s.Out, text)
	return err
}

// Select returns the system clipboard when useSystem is set, otherwise the
// given streams.
func Select(useSystem bool, in io.Reader, out io.Writer) Board {
	if useSystem {
		return System{}
	}
	return Stream{In: in, Out: out}
}
