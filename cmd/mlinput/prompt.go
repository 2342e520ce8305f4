package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mlinput/internal/clipboard"
	"mlinput/internal/merge"
	"mlinput/internal/record"
)

var errNoTerminal = errors.New("no terminal to ask on; overwriting")

// promptDecider asks on the terminal whether pasted rows should be added to
// existing values. Without overlapping values there is nothing to ask.
func promptDecider(in io.Reader, out io.Writer, interactive bool) merge.Decider {
	confirm := merge.Confirm(func() (bool, error) {
		if !interactive {
			return false, errNoTerminal
		}
		fmt.Fprint(out, "Add pasted text to the existing values? [y/N] ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	})
	return merge.DeciderFunc(func(current *record.Record, entries []clipboard.Entry) (merge.Mode, error) {
		if !merge.Overlaps(current, entries) {
			return merge.Overwrite, nil
		}
		return confirm.Decide(current, entries)
	})
}
