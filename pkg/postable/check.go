package postable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotTable reports a line that is neither a row nor a border.
var ErrNotTable = errors.New("not a table line")

// CheckTable reports the first line that does not belong in a table: every
// non-blank line must contain a '|' or be a border with both '+' and '-'.
// [Decode] tolerates such lines; this is for warning curators about them.
func CheckTable(lines []string) error {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Contains(line, "|") || (strings.Contains(line, "+") && strings.Contains(line, "-")) {
			continue
		}

		return fmt.Errorf("%w: line %d: %q", ErrNotTable, i+1, line)
	}

	return nil
}
